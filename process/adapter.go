package process

import (
	"context"
	"time"

	"github.com/kbukum/shkit/util"
)

// Config configures a process adapter.
type Config struct {
	// Name identifies this adapter instance in logs and metrics.
	Name string `yaml:"name,omitempty" mapstructure:"name"`
	// GracePeriod is the default grace period for SIGTERM→SIGKILL.
	GracePeriod time.Duration `yaml:"grace_period,omitempty" mapstructure:"grace_period"`
	// Timeout is the default execution timeout. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// Adapter wraps subprocess execution with adapter-level defaults. Timeouts
// live here, at the process boundary, not in the pipeline core.
type Adapter struct {
	config Config
}

// NewAdapter creates a new process adapter.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{config: cfg}
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// Run executes a command, applying adapter-level defaults.
func (a *Adapter) Run(ctx context.Context, cmd Command) (*Result, error) {
	cmd.GracePeriod = util.Coalesce(cmd.GracePeriod, a.config.GracePeriod)
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}
	return Run(ctx, cmd)
}

// Slurp runs a command through the adapter and captures stdout with
// trailing newlines stripped.
func (a *Adapter) Slurp(ctx context.Context, cmd Command) ([]byte, error) {
	cmd.GracePeriod = util.Coalesce(cmd.GracePeriod, a.config.GracePeriod)
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}
	return Slurp(ctx, cmd)
}
