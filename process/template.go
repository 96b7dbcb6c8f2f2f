package process

import (
	"bytes"
	"context"
	"io"
	"time"

	kiterrors "github.com/kbukum/shkit/errors"
	"github.com/kbukum/shkit/words"
)

// Option adjusts a Command built from a template. Options are passed after
// the template arguments.
type Option func(*Command)

// WithStdin connects r to the command's stdin.
func WithStdin(r io.Reader) Option { return func(c *Command) { c.Stdin = r } }

// WithDir sets the working directory.
func WithDir(dir string) Option { return func(c *Command) { c.Dir = dir } }

// WithEnv appends env vars on top of the inherited environment.
func WithEnv(env []string) Option { return func(c *Command) { c.Env = env } }

// WithGracePeriod sets the SIGTERM-to-SIGKILL grace period.
func WithGracePeriod(d time.Duration) Option {
	return func(c *Command) { c.GracePeriod = d }
}

// FromTemplate builds a Command from a words template. The first expanded
// word is the binary, the rest are its arguments. Trailing Option values
// are split off before template expansion.
func FromTemplate(format string, args ...any) (Command, error) {
	var opts []Option
	for len(args) > 0 {
		opt, ok := args[len(args)-1].(Option)
		if !ok {
			break
		}
		opts = append(opts, opt)
		args = args[:len(args)-1]
	}

	argv, err := words.Split(format, args...)
	if err != nil {
		return Command{}, err
	}
	if len(argv) == 0 {
		return Command{}, kiterrors.Usage("template expanded to an empty command").
			WithDetail("template", format)
	}
	cmd := Command{Binary: argv[0], Args: argv[1:]}
	for _, opt := range opts {
		opt(&cmd)
	}
	return cmd, nil
}

// Check runs the command to completion and fails on nonzero exit. The
// counterpart of running a command bare in a shell script under `set -e`.
func Check(ctx context.Context, cmd Command) error {
	_, err := Run(ctx, cmd)
	return err
}

// Slurp runs the command, captures its stdout and strips all trailing
// newlines, the same behavior $(...) has in the shell.
func Slurp(ctx context.Context, cmd Command) ([]byte, error) {
	cmd.Stdout = nil // capture, never stream
	result, err := Run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(result.Stdout, "\n"), nil
}

// CheckCmd expands a words template and runs it to completion, failing on
// nonzero exit.
func CheckCmd(ctx context.Context, format string, args ...any) error {
	cmd, err := FromTemplate(format, args...)
	if err != nil {
		return err
	}
	return Check(ctx, cmd)
}

// SlurpCmd expands a words template, runs it, and returns its stdout with
// trailing newlines stripped.
func SlurpCmd(ctx context.Context, format string, args ...any) ([]byte, error) {
	cmd, err := FromTemplate(format, args...)
	if err != nil {
		return nil, err
	}
	return Slurp(ctx, cmd)
}
