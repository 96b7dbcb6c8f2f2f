package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for a tool. Returns explicit
// paths if provided, otherwise searches standard locations.
func (cr *Resolver) ResolveFiles(toolName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findFirst(configSearchPaths(toolName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findFirst(envSearchPaths(toolName))
	}

	return resolved
}

func (cr *Resolver) findFirst(paths []string) string {
	for _, path := range paths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configSearchPaths(toolName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", toolName),
		fmt.Sprintf("../cmd/%s/config.yml", toolName),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
	}
}

func envSearchPaths(toolName string) []string {
	return []string{
		fmt.Sprintf(".env.%s", toolName),
		".env",
		"../.env",
	}
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig loads configuration for a tool into the provided cfg struct.
// It searches for config.yml and .env files in standard locations, binds
// environment variables, and unmarshals the result into cfg.
func LoadConfig(toolName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(toolName, lc)

	v := viper.New()

	// YAML config first (base configuration)
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", files.ConfigFile, err)
		}
	}

	// Environment overrides, with TOOLNAME_LOGGING_LEVEL style keys
	bindEnvVars(v, strings.ToUpper(toolName)+"_")

	// .env last: it only fills variables that are not already set
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", files.EnvFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling config for %s: %w", toolName, err)
	}

	return nil
}

// bindEnvVars sets every prefixed environment variable on the viper
// instance. Viper's AutomaticEnv does not surface env-only keys through
// Unmarshal, so the values are Set explicitly under each plausible nested
// key spelling (LOGGING_SERVICE_NAME -> logging.service.name,
// logging.service_name, logging_service_name).
func bindEnvVars(v *viper.Viper, prefix string) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

func envKeyVariants(key string) []string {
	variants := []string{
		key,
		strings.ReplaceAll(key, "_", "."),
	}
	if i := strings.Index(key, "_"); i >= 0 {
		variants = append(variants, key[:i]+"."+key[i+1:])
	}
	return variants
}
