// Package config loads server configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Images   ImagesConfig   `mapstructure:"images"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	// DSN is either a postgres URL or a SQLite file path.
	DSN string `mapstructure:"dsn"`
}

// ImagesConfig selects the illustration source for option enrichment.
type ImagesConfig struct {
	// Source is "gemini" (generative illustration, default) or "pexels"
	// (photo search).
	Source    string `mapstructure:"source"`
	PexelsKey string `mapstructure:"pexels_key"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// Load reads configuration from the given file (or ./config.{yaml,...} when
// empty), with MOCHI_-prefixed environment variables taking precedence over
// file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mochi")
	}

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("database.dsn", "mochi.db")
	v.SetDefault("images.source", "gemini")
	v.SetDefault("log.mode", "development")

	v.SetEnvPrefix("MOCHI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
