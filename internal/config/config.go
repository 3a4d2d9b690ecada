package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user configuration read from config.toml.
type Config struct {
	// ActivitiesFile is the YAML activities file. Empty means the built-in sample set.
	ActivitiesFile string `toml:"activities_file"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	Theme          string `toml:"theme"`
}

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func defaults() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "console",
		Theme:     ThemeAuto,
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", "alearn", "config.toml")
}

// DefaultActivitiesFile is the path `alearn init` writes to when none is configured.
func DefaultActivitiesFile(homeDir string) string {
	return filepath.Join(homeDir, ".config", "alearn", "activities.yaml")
}

func Load(configPath string) (*Config, error) {
	config := defaults()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// If explicit config path provided, use it
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, err
		}
		expandTilde(config, homeDir)
		return config, config.validate()
	}

	path := DefaultPath(homeDir)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, err
		}
		expandTilde(config, homeDir)
		return config, config.validate()
	}

	// Use defaults if no config file
	return config, nil
}

func (c *Config) validate() error {
	switch c.Theme {
	case "":
		c.Theme = ThemeAuto
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Theme)
	}
	switch c.LogFormat {
	case "":
		c.LogFormat = "console"
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want console or json)", c.LogFormat)
	}
	return nil
}

func expandTilde(config *Config, homeDir string) {
	if len(config.ActivitiesFile) > 0 && config.ActivitiesFile[0] == '~' {
		config.ActivitiesFile = filepath.Join(homeDir, config.ActivitiesFile[1:])
	}
}
