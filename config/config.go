package config

import (
	"fmt"

	"github.com/kbukum/shkit/logger"
	"github.com/kbukum/shkit/process"
	"github.com/kbukum/shkit/util"
)

// Config contains the configuration fields a pipeline tool built on the
// kit needs. Tools extend it by embedding it in their own config structs.
//
//	type MyConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Workdir string `yaml:"workdir" mapstructure:"workdir"`
//	}
type Config struct {
	Name        string         `yaml:"name" mapstructure:"name"`
	Environment string         `yaml:"environment" mapstructure:"environment"`
	Debug       bool           `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Process     process.Config `yaml:"process" mapstructure:"process"`
}

// ApplyDefaults applies default values to the configuration.
// Override this in embedding structs and call c.Config.ApplyDefaults() first.
func (c *Config) ApplyDefaults() {
	c.Environment = util.Coalesce(c.Environment, "development")
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate the tool name so logs carry the right service tag.
	c.Logging.ServiceName = util.Coalesce(c.Logging.ServiceName, c.Name)
	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
}

// Validate validates the configuration fields.
// Override this in embedding structs and call c.Config.Validate() first.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	if !util.Contains(validEnvs, c.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if c.Process.Timeout < 0 {
		return fmt.Errorf("config.process.timeout must not be negative")
	}
	return nil
}
