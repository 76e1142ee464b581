// Package config loads the app configuration from ~/.agrilink/config.yaml.
// Everything has a default; the file only needs to exist when overriding.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppVersion is stamped into the about screen and the version command.
const AppVersion = "1.0.0"

// Config holds all AgriLink client configuration.
type Config struct {
	// DataDir is where the database and logs live. Defaults to ~/.agrilink.
	DataDir string `yaml:"data_dir"`

	// Database overrides the SQLite file path. Defaults to <data_dir>/agrilink.db.
	Database string `yaml:"database"`

	// Location is the market region label shown in the top bar.
	Location string `yaml:"location"`

	// Logging controls the file logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap file logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:  defaultDataDir(),
		Location: "Guntur, AP",
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".agrilink"
	}
	return filepath.Join(home, ".agrilink")
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load reads the config file at path, overlaying it on the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.Location == "" {
		cfg.Location = "Guntur, AP"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return cfg, nil
}

// DatabasePath resolves the SQLite file location.
func (c Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(c.DataDir, "agrilink.db")
}

// LogFile resolves the log file location.
func (c Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.DataDir, "logs", "agrilink.log")
}
