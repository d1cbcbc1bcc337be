package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for thinkcenter.
type Config struct {
	LogLevel  string     `yaml:"logLevel"`
	LogFormat string     `yaml:"logFormat"`
	Workspace string     `yaml:"workspace"`
	Chat      ChatConfig `yaml:"chat"`
}

// ChatConfig describes how to bring the chat panel to the foreground.
// An empty FocusCommand disables focusing.
type ChatConfig struct {
	FocusCommand string        `yaml:"focusCommand"`
	FocusArgs    []string      `yaml:"focusArgs"`
	FocusTimeout time.Duration `yaml:"focusTimeout"`
}

func defaults() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Chat:      ChatConfig{FocusTimeout: 5 * time.Second},
	}
}

// LoadConfig loads configuration from a YAML file and environment overrides.
// An empty path reads DefaultConfigPath, which may be absent.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if level := os.Getenv("THINK_CENTER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("THINK_CENTER_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	if ws := os.Getenv("THINK_CENTER_WORKSPACE"); ws != "" {
		cfg.Workspace = ws
	}
	if fields := strings.Fields(os.Getenv("THINK_CENTER_FOCUS_COMMAND")); len(fields) > 0 {
		cfg.Chat.FocusCommand = fields[0]
		cfg.Chat.FocusArgs = fields[1:]
	}
	if cfg.Chat.FocusTimeout <= 0 {
		cfg.Chat.FocusTimeout = defaults().Chat.FocusTimeout
	}

	return cfg, nil
}

// DefaultConfigPath returns the default location for the CLI config file.
func DefaultConfigPath() string {
	if path := os.Getenv("THINK_CENTER_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".thinkcenter", "config.yaml")
}
