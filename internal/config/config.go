// Package config provides configuration management for Cadence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tbreslin/cadence/internal/domain"
)

// Config holds all configuration for the Cadence application.
type Config struct {
	Pattern   string          `mapstructure:"pattern"`
	Durations DurationsConfig `mapstructure:"durations"`
	Cues      CuesConfig      `mapstructure:"cues"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// DurationsConfig holds per-mode session lengths in minutes.
type DurationsConfig struct {
	FocusMinutes      int `mapstructure:"focus_minutes"`
	ShortBreakMinutes int `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `mapstructure:"long_break_minutes"`
}

// CuesConfig holds audio cue and desktop notification settings.
type CuesConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Notify  bool `mapstructure:"notify"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings.
type ThemeConfig struct {
	ColorFocus  string `mapstructure:"color_focus"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorTitle  string `mapstructure:"color_title"`
	ColorHelp   string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:  "#7C6FE0",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorTitle:  "#6B7280",
		ColorHelp:   "#95A5A6",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pattern: domain.PatternString(domain.DefaultPattern()),
		Durations: DurationsConfig{
			FocusMinutes:      domain.DefaultFocusMinutes,
			ShortBreakMinutes: domain.DefaultShortBreakMinutes,
			LongBreakMinutes:  domain.DefaultLongBreakMinutes,
		},
		Cues: CuesConfig{
			Enabled: true,
			Notify:  true,
		},
		Storage: StorageConfig{
			DataDir: "~/.cadence",
		},
		Theme: DefaultThemeConfig(),
	}
}

// ToDurations converts the configured minutes into a duration registry,
// coercing negatives to 0 the same way user edits are coerced.
func (c *Config) ToDurations() *domain.Durations {
	d := domain.NewDurations()
	d.Set(domain.SessionTypeFocus, c.Durations.FocusMinutes)
	d.Set(domain.SessionTypeShortBreak, c.Durations.ShortBreakMinutes)
	d.Set(domain.SessionTypeLongBreak, c.Durations.LongBreakMinutes)
	return d
}

// ToPattern parses the configured pattern string, falling back to the
// default cycle when the text has no recognized tokens.
func (c *Config) ToPattern() []domain.SessionType {
	pattern, err := domain.ParsePattern(c.Pattern)
	if err != nil {
		return domain.DefaultPattern()
	}
	return pattern
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.cadence" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".cadence")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("pattern", cfg.Pattern)
	viper.Set("durations.focus_minutes", cfg.Durations.FocusMinutes)
	viper.Set("durations.short_break_minutes", cfg.Durations.ShortBreakMinutes)
	viper.Set("durations.long_break_minutes", cfg.Durations.LongBreakMinutes)
	viper.Set("cues.enabled", cfg.Cues.Enabled)
	viper.Set("cues.notify", cfg.Cues.Notify)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cadence", "config.toml"), nil
}

// GetDBPath returns the path to the session journal database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "cadence.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("pattern", defaults.Pattern)
	viper.SetDefault("durations.focus_minutes", defaults.Durations.FocusMinutes)
	viper.SetDefault("durations.short_break_minutes", defaults.Durations.ShortBreakMinutes)
	viper.SetDefault("durations.long_break_minutes", defaults.Durations.LongBreakMinutes)
	viper.SetDefault("cues.enabled", defaults.Cues.Enabled)
	viper.SetDefault("cues.notify", defaults.Cues.Notify)
	viper.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	viper.SetDefault("theme.color_focus", defaults.Theme.ColorFocus)
	viper.SetDefault("theme.color_break", defaults.Theme.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.Theme.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.Theme.ColorTitle)
	viper.SetDefault("theme.color_help", defaults.Theme.ColorHelp)
}
