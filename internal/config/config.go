// Package config handles configuration loading and management for Phosphor.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for Phosphor.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Words   WordsConfig   `mapstructure:"words"`
	Stages  StagesConfig  `mapstructure:"stages"`
}

// DisplayConfig holds the frame contract and presentation pacing.
type DisplayConfig struct {
	// Width is the frame width in columns.
	Width int `mapstructure:"width"`
	// Height is the frame height in rows.
	Height int `mapstructure:"height"`
	// ScanDelay is the pause between lines during a progressive render.
	ScanDelay time.Duration `mapstructure:"scan_delay"`
	// MessagePause is the readability pause after a hit or miss report.
	MessagePause time.Duration `mapstructure:"message_pause"`
	// ErrorPause is the pause after a rejected guess message.
	ErrorPause time.Duration `mapstructure:"error_pause"`
	// BootPause is the pause on the boot banner before the first session.
	BootPause time.Duration `mapstructure:"boot_pause"`
	// Color toggles the phosphor styling; false renders plain frames.
	Color bool `mapstructure:"color"`
}

// WordsConfig holds the corpus source.
type WordsConfig struct {
	// File is a YAML word-list path; empty uses the built-in corpus.
	File string `mapstructure:"file"`
}

// StagesConfig holds the gallows stage-table source.
type StagesConfig struct {
	// File is a YAML stage-table path; empty uses the built-in table.
	File string `mapstructure:"file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:        80,
			Height:       24,
			ScanDelay:    5 * time.Millisecond,
			MessagePause: time.Second,
			ErrorPause:   1500 * time.Millisecond,
			BootPause:    1500 * time.Millisecond,
			Color:        true,
		},
	}
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (PHOSPHOR_WORDS_FILE, PHOSPHOR_STAGES_FILE)
// 2. Project config (.phosphor.yaml in current directory or parent)
// 3. User config (~/.config/phosphor/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Load user config from XDG path
	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	// Environment variable overrides
	v.SetEnvPrefix("PHOSPHOR")
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("words.file", "PHOSPHOR_WORDS_FILE")
	v.BindEnv("stages.file", "PHOSPHOR_STAGES_FILE")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration invariants. The frame minimums leave
// room for the border, the tallest built-in stage, and the fixed interior
// lines.
func (c *Config) Validate() error {
	if c.Display.Width < 40 {
		return fmt.Errorf("display.width %d is below the minimum of 40", c.Display.Width)
	}
	if c.Display.Height < 21 {
		return fmt.Errorf("display.height %d is below the minimum of 21", c.Display.Height)
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"display.scan_delay", c.Display.ScanDelay},
		{"display.message_pause", c.Display.MessagePause},
		{"display.error_pause", c.Display.ErrorPause},
		{"display.boot_pause", c.Display.BootPause},
	} {
		if d.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", d.name, d.value)
		}
	}

	return nil
}

// ZeroDelays clears every pacing delay, for instant mode and tests.
func (c *Config) ZeroDelays() {
	c.Display.ScanDelay = 0
	c.Display.MessagePause = 0
	c.Display.ErrorPause = 0
	c.Display.BootPause = 0
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	def := Default()

	// Display defaults
	v.SetDefault("display.width", def.Display.Width)
	v.SetDefault("display.height", def.Display.Height)
	v.SetDefault("display.scan_delay", def.Display.ScanDelay.String())
	v.SetDefault("display.message_pause", def.Display.MessagePause.String())
	v.SetDefault("display.error_pause", def.Display.ErrorPause.String())
	v.SetDefault("display.boot_pause", def.Display.BootPause.String())
	v.SetDefault("display.color", def.Display.Color)

	// Source defaults: empty means built-in
	v.SetDefault("words.file", "")
	v.SetDefault("stages.file", "")
}

// getUserConfigDir returns the XDG config directory for Phosphor.
func getUserConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "phosphor")
	}

	// Fall back to ~/.config/phosphor
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "phosphor")
	}
	return filepath.Join(home, ".config", "phosphor")
}

// findProjectConfig searches for .phosphor.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".phosphor.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
