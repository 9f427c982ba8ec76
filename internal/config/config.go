package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title     string
	StatusBar string `mapstructure:"status_bar"`
	Mouse     bool
}

// LogConfig controls where the diagnostic trace goes. An empty Path discards it.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix HIKELIST_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.title", "Select Your Hike")
	v.SetDefault("ui.status_bar", "auto")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "hikelist.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HIKELIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hikelist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HIKELIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the default location is optional; an explicit path must load
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
