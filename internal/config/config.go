// Package config provides configuration management for reactfix.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/reactfix/internal/logging"
	"github.com/open-cli-collective/reactfix/internal/view"
)

// DefaultPattern selects the component code examples of a docs tree.
const DefaultPattern = "docs/components/*/code-examples/*.html"

// Config holds the reactfix configuration.
type Config struct {
	Root         string `yaml:"root,omitempty"`
	Pattern      string `yaml:"pattern,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// EnvVars lists the environment variables read by LoadFromEnv.
var EnvVars = []string{"REACTFIX_ROOT", "REACTFIX_PATTERN", "REACTFIX_OUTPUT", "REACTFIX_LOG_LEVEL"}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Pattern != "" {
		if _, err := filepath.Match(c.Pattern, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
		}
	}

	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	if err := logging.ValidateLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// ApplyDefaults fills in empty fields.
func (c *Config) ApplyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.OutputFormat == "" {
		c.OutputFormat = string(view.FormatTable)
	}
	if c.LogLevel == "" {
		c.LogLevel = logging.LevelNormal
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if root := os.Getenv("REACTFIX_ROOT"); root != "" {
		c.Root = root
	}
	if pattern := os.Getenv("REACTFIX_PATTERN"); pattern != "" {
		c.Pattern = pattern
	}
	if output := os.Getenv("REACTFIX_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
	if level := os.Getenv("REACTFIX_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "reactfix", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".reactfix", "config.yml")
	}

	return filepath.Join(home, ".config", "reactfix", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; a malformed one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
