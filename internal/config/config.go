// Package config handles loading the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file.
const (
	EnvDataFile = "TODOLIST_FILE"
	EnvLogLevel = "TODOLIST_LOG_LEVEL"
	EnvLogFile  = "TODOLIST_LOG_FILE"
)

// Config represents the application configuration.
type Config struct {
	// DataFile is the tab-separated todo file. Relative paths resolve against the working dir.
	DataFile       string    `yaml:"data_file"`
	Theme          string    `yaml:"theme"` // classic | neon | mono
	NotifyDueToday bool      `yaml:"notify_due_today"`
	Log            LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	// File enables rotated file logging when set.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: "TodoList.txt",
		Theme:    "classic",
		Log:      LogConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.config/todolist/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todolist", "config.yaml"), nil
}

// Load reads the configuration from path, or from DefaultPath when path is empty.
// A missing file yields the defaults. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDataFile)); v != "" {
		c.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.Log.File = v
	}
}
