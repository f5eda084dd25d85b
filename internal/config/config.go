// This file defines the configuration structure for the application.
package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCategories are the navigation tokens offered when none are configured.
var DefaultCategories = []string{"mmorpg", "shooter", "sailing", "permadeath", "superhero", "pixel"}

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port    int     `mapstructure:"port"`
	Catalog Catalog `mapstructure:"catalog"`
	Server  struct {
		MaxSessions int `mapstructure:"max_sessions"`
	} `mapstructure:"server"`
}

// Catalog holds the settings for the remote games catalog.
type Catalog struct {
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	APIHost         string        `mapstructure:"api_host"`
	DefaultCategory string        `mapstructure:"default_category"`
	Categories      []string      `mapstructure:"categories"`
	Timeout         time.Duration `mapstructure:"timeout"` // 0 keeps the transport default
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	// FREEGAMES_CATALOG_API_KEY overrides `catalog.api_key`, and so on.
	v.SetEnvPrefix("FREEGAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("catalog.base_url", "https://free-to-play-games-database.p.rapidapi.com")
	v.SetDefault("catalog.api_key", "")
	v.SetDefault("catalog.api_host", "free-to-play-games-database.p.rapidapi.com")
	v.SetDefault("catalog.default_category", "shooter")
	v.SetDefault("catalog.categories", DefaultCategories)
	v.SetDefault("catalog.timeout", 0)
	v.SetDefault("server.max_sessions", 1024)
	return v
}

func read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return nil, err
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if len(config.Catalog.Categories) == 0 {
		config.Catalog.Categories = append([]string(nil), DefaultCategories...)
	}
	if config.Catalog.DefaultCategory == "" {
		config.Catalog.DefaultCategory = "shooter"
	}
	if config.Server.MaxSessions <= 0 {
		config.Server.MaxSessions = 1024
	}
	return &config, nil
}

// Load reads configuration from ./.env, a file named "config.yml" in the
// current directory and FREEGAMES_* environment variables, in increasing
// order of precedence.
func Load() (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	return read(newViper())
}

// Watch loads the configuration like Load and then calls onChange with the
// freshly decoded settings every time config.yml changes on disk.
func Watch(onChange func(*Config)) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	v := newViper()
	cfg, err := read(v)
	if err != nil {
		return nil, err
	}
	if v.ConfigFileUsed() == "" {
		// Nothing on disk to watch.
		return cfg, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		updated, err := decode(v)
		if err != nil {
			log.Printf("Warning: ignoring invalid config change in %s: %v", e.Name, err)
			return
		}
		log.Printf("Configuration reloaded from %s", e.Name)
		onChange(updated)
	})
	v.WatchConfig()
	return cfg, nil
}
