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
	UI   UIConfig
	Deck DeckConfig
	Log  LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Motion bool // indicator slide, typewriter, count-up
	Mouse  bool
	Splash bool
}

// DeckConfig points at an optional TOML deck overriding the built-in copy.
type DeckConfig struct {
	Path string
}

// LogConfig holds debug logging settings. Empty path disables logging.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix SHOWDECK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.motion", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.splash", true)
	v.SetDefault("deck.path", "")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHOWDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "showdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
