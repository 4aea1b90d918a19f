// Package config provides configuration management for scriptbox.
// It uses koanf v2 to load configuration from a YAML file and supports
// saving updated configuration (e.g., after `config set`).
//
// Configuration lives at ~/.config/scriptbox/config.yaml by default. A
// missing file is not an error: every field has a usable default, so first
// runs work without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/davidhurst/scriptbox/internal/script"
)

// Config holds scriptbox settings loaded from the YAML config file.
// Fields are tagged for both koanf (loading) and yaml (saving).
type Config struct {
	// StorePath is the location of the script database.
	// Default: <config dir>/scripts.db.
	StorePath string `koanf:"store_path" yaml:"store_path"`

	// LogLevel controls logging verbosity: debug, info, warn, error.
	// Default: info.
	LogLevel string `koanf:"log_level" yaml:"log_level"`

	// ValidationLevel is the default strictness on add/update:
	// none, basic, or strict. Default: basic.
	ValidationLevel string `koanf:"validation_level" yaml:"validation_level"`

	// AllowNetworkAccess disables the network-access scan.
	AllowNetworkAccess bool `koanf:"allow_network_access" yaml:"allow_network_access"`

	// AllowSystemModification disables the system-modification scan.
	AllowSystemModification bool `koanf:"allow_system_modification" yaml:"allow_system_modification"`

	// TimeoutSeconds is the default execution timeout. Default: 300.
	TimeoutSeconds int `koanf:"timeout_seconds" yaml:"timeout_seconds"`
}

// Validation errors returned by Load.
var (
	ErrInvalidTimeout         = errors.New("timeout_seconds must be positive")
	ErrInvalidValidationLevel = errors.New("validation_level must be none, basic, or strict")
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "scriptbox", "config.yaml")
}

// Load reads configuration from path. A missing file yields the defaults;
// an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	cfg.applyDefaults(filepath.Dir(path))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults(configDir string) {
	if c.StorePath == "" {
		c.StorePath = filepath.Join(configDir, "scripts.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ValidationLevel == "" {
		c.ValidationLevel = string(script.ValidationBasic)
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 300
	}
}

// validate checks field values after defaulting.
func (c *Config) validate() error {
	if c.TimeoutSeconds <= 0 {
		return ErrInvalidTimeout
	}
	if _, err := script.ParseValidationLevel(c.ValidationLevel); err != nil {
		return ErrInvalidValidationLevel
	}
	return nil
}

// Level returns the configured validation level as its typed form.
// validate has already guaranteed it parses.
func (c *Config) Level() script.ValidationLevel {
	level, _ := script.ParseValidationLevel(c.ValidationLevel)
	return level
}

// Save writes the configuration to path, creating parent directories as
// needed. 0600: the file may hold paths the user considers private.
func Save(path string, cfg *Config) error {
	data, err := goyaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}
