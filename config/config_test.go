package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := Config{Name: "tool"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := Config{Name: "tool", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})

	t.Run("tool name propagates to logging", func(t *testing.T) {
		cfg := Config{Name: "tool"}
		cfg.ApplyDefaults()
		if cfg.Logging.ServiceName != "tool" {
			t.Errorf("expected logging service name 'tool', got %q", cfg.Logging.ServiceName)
		}
	})

	t.Run("debug raises log level", func(t *testing.T) {
		cfg := Config{Name: "tool", Debug: true, Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug level, got %q", cfg.Logging.Level)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{"valid development", withDefaults(Config{Name: "tool", Environment: "development"}), false, ""},
		{"valid production", withDefaults(Config{Name: "tool", Environment: "production"}), false, ""},
		{"missing name", withDefaults(Config{Environment: "production"}), true, "config.name is required"},
		{"invalid environment", withDefaults(Config{Name: "tool", Environment: "lab"}), true, "config.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func withDefaults(cfg Config) Config {
	cfg.ApplyDefaults()
	// keep the explicitly-invalid fields under test untouched
	return cfg
}

func TestConfigValidate_NegativeTimeout(t *testing.T) {
	cfg := withDefaults(Config{Name: "tool"})
	cfg.Process.Timeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: grepper
environment: staging
logging:
  level: warn
  format: json
process:
  timeout: 30s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := LoadConfig("grepper", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "grepper" {
		t.Errorf("expected name 'grepper', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.Logging.Level)
	}
	if cfg.Process.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Process.Timeout)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("GREPPER_ENVIRONMENT", "production")
	defer os.Unsetenv("GREPPER_ENVIRONMENT")

	var cfg Config
	if err := LoadConfig("grepper", &cfg, WithConfigFile(""), WithEnvFile("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected env override to win, got %q", cfg.Environment)
	}
}

func TestLoadConfig_MissingFilesIsFine(t *testing.T) {
	var cfg Config
	fs := &fakeFS{}
	if err := LoadConfig("tool", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolver_ExplicitPathsWin(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{"./config.yml": true}}
	r := &Resolver{FileSystem: fs}
	files := r.ResolveFiles("tool", LoaderConfig{ConfigFile: "custom.yml"})
	if files.ConfigFile != "custom.yml" {
		t.Errorf("expected explicit path to win, got %q", files.ConfigFile)
	}
}

func TestResolver_SearchesStandardPaths(t *testing.T) {
	fs := &fakeFS{existing: map[string]bool{"./config.yml": true, ".env": true}}
	r := &Resolver{FileSystem: fs}
	files := r.ResolveFiles("tool", LoaderConfig{})
	if files.ConfigFile != "./config.yml" {
		t.Errorf("expected ./config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("expected .env, got %q", files.EnvFile)
	}
}

// fakeFS is an in-memory FileSystem for loader tests.
type fakeFS struct {
	existing map[string]bool
	loaded   []string
}

func (f *fakeFS) Exists(path string) bool { return f.existing[path] }

func (f *fakeFS) LoadEnv(path string) error {
	f.loaded = append(f.loaded, path)
	return nil
}
