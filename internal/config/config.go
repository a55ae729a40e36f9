// Package config handles reading and writing .stackscout.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the repository root.
const FileName = ".stackscout.yaml"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the top-level structure for .stackscout.yaml.
type Config struct {
	Version  int           `yaml:"version"`
	Output   string        `yaml:"output"`    // "table" | "json" | "yaml"
	LogLevel string        `yaml:"log_level"` // "debug" | "info" | "warn" | "error"
	EnvScan  EnvScanConfig `yaml:"env_scan"`
}

// EnvScanConfig controls the env file scanner.
type EnvScanConfig struct {
	Exclude     []string `yaml:"exclude"`
	FlagSecrets bool     `yaml:"flag_secrets"`
}

// ReadConfig reads .stackscout.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	return ReadFile(filepath.Join(dir, FileName))
}

// ReadFile reads a config file at an explicit path. Fields missing from the
// file keep their defaults.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Load reads path if set, otherwise .stackscout.yaml in dir. A missing
// implicit config is not an error; defaults are returned instead.
func Load(path, dir string) (*Config, error) {
	if path != "" {
		return ReadFile(path)
	}
	cfg, err := ReadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteConfig writes cfg to .stackscout.yaml in the given directory.
func WriteConfig(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output %q (expected table, json, or yaml)", c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Output:   OutputTable,
		LogLevel: "warn",
		EnvScan: EnvScanConfig{
			Exclude:     []string{".git", "node_modules"},
			FlagSecrets: true,
		},
	}
}
