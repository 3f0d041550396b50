package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the application settings read from the environment.
type Config struct {
	AppPort          string
	StorageDriver    string
	UsersFile        string
	TweetsFile       string
	StoreInit        bool // create missing collection files at startup
	DatabaseDSN      string
	RabbitMQURL      string // empty disables event publishing
	RabbitMQExchange string
	LogLevel         string
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// SetDefaults registers the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORAGE_DRIVER", DriverJSON)
	v.SetDefault("USERS_FILE", "users.json")
	v.SetDefault("TWEETS_FILE", "tweets.json")
	v.SetDefault("STORE_INIT", false)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "tweeter")
	v.SetDefault("LOG_LEVEL", "info")
}

// FromViper builds and checks a Config from v.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:          v.GetString("APP_PORT"),
		StorageDriver:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		UsersFile:        v.GetString("USERS_FILE"),
		TweetsFile:       v.GetString("TWEETS_FILE"),
		StoreInit:        v.GetBool("STORE_INIT"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      strings.TrimSpace(v.GetString("RABBITMQ_URL")),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	switch cfg.StorageDriver {
	case DriverJSON:
		if cfg.UsersFile == "" || cfg.TweetsFile == "" {
			return Config{}, fmt.Errorf("USERS_FILE and TWEETS_FILE are required for the %s driver", DriverJSON)
		}
	case DriverSQLite, DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return Config{}, fmt.Errorf("DATABASE_DSN is required for the %s driver", cfg.StorageDriver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg, nil
}
