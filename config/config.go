// Package config handles loading and managing application configuration
// from YAML files, an optional .env file and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// QR controls image generation.
type QR struct {
	Size          int    `yaml:"size"`
	RecoveryLevel string `yaml:"recovery_level"`
}

// History controls the log of saved downloads.
type History struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// Config holds all application configuration values.
type Config struct {
	Port            int      `yaml:"port"`
	DataDir         string   `yaml:"data_dir"`
	OutputDir       string   `yaml:"output_dir"`
	LogLevel        string   `yaml:"log_level"`
	Theme           string   `yaml:"theme"`
	QR              QR       `yaml:"qr"`
	History         History  `yaml:"history"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// Duration is a wrapper around time.Duration that supports YAML unmarshalling
// from human-readable strings like "30s", "5m", "1h".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return &Config{
		Port:      8556,
		DataDir:   filepath.Join(homeDir, ".qrgen"),
		OutputDir: ".",
		LogLevel:  "info",
		Theme:     "light",
		QR: QR{
			Size:          256,
			RecoveryLevel: "medium",
		},
		History: History{
			Enabled: true,
			Limit:   50,
		},
		ShutdownTimeout: Duration{10 * time.Second},
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. Variables from a .env file in the
// working directory are loaded next (without replacing variables already set),
// then QRGEN_* environment variables override file and default values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.OutputDir = expandHome(cfg.OutputDir)
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// applyEnvOverrides applies QRGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QRGEN_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("QRGEN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("QRGEN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("QRGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QRGEN_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("QRGEN_QR_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QR.Size = n
		}
	}
	if v := os.Getenv("QRGEN_RECOVERY_LEVEL"); v != "" {
		cfg.QR.RecoveryLevel = v
	}
	if v := os.Getenv("QRGEN_HISTORY"); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			cfg.History.Enabled = true
		case "false", "0", "no":
			cfg.History.Enabled = false
		}
	}
	if v := os.Getenv("QRGEN_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = Duration{d}
		}
	}
}

// EnsureDataDir creates the DataDir if it does not already exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", c.DataDir, err)
	}
	return nil
}

// HistoryPath is the location of the save log database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}
