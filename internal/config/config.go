package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Deck     DeckConfig
	Auth     AuthConfig
}

// DatabaseConfig holds sqlite settings for the prefs database.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation defaults. Locale is only the startup
// fallback; the persisted locale preference wins once one exists.
type UIConfig struct {
	Locale string
}

// DeckConfig tunes the swipe decision thresholds.
type DeckConfig struct {
	DistanceThreshold float64 `mapstructure:"distance_threshold"`
	VelocityThreshold float64 `mapstructure:"velocity_threshold"`
}

// AuthConfig tunes the mock login.
type AuthConfig struct {
	LatencyMS int `mapstructure:"latency_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix RWADECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rwadeck", "rwadeck.db"))
	v.SetDefault("ui.locale", "en")
	v.SetDefault("deck.distance_threshold", 50.0)
	v.SetDefault("deck.velocity_threshold", 300.0)
	v.SetDefault("auth.latency_ms", 600)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RWADECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rwadeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RWADECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings view to persist the startup locale.
func Save(cfg Config) error {
	path := os.Getenv("RWADECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "rwadeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("deck.distance_threshold", cfg.Deck.DistanceThreshold)
	v.Set("deck.velocity_threshold", cfg.Deck.VelocityThreshold)
	v.Set("auth.latency_ms", cfg.Auth.LatencyMS)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
