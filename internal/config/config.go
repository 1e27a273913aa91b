package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:",squash"`
	Database DatabaseConfig `mapstructure:",squash"`
	Log      LogConfig      `mapstructure:",squash"`
	Events   EventsConfig   `mapstructure:",squash"`
	Metrics  MetricsConfig  `mapstructure:",squash"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"PORT"`
	StaticDir string `mapstructure:"STATIC_DIR"`
	GinMode   string `mapstructure:"GIN_MODE"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"DB_HOST"`
	Port         int    `mapstructure:"DB_PORT"`
	User         string `mapstructure:"DB_USER"`
	Password     string `mapstructure:"DB_PASSWORD"`
	Name         string `mapstructure:"DB_NAME"`
	SSLMode      string `mapstructure:"DB_SSLMODE"`
	MaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
}

type LogConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"LOG_PRETTY"`
}

// EventsConfig controls change-event publishing. An empty RedisURL disables
// it.
type EventsConfig struct {
	RedisURL string `mapstructure:"REDIS_URL"`
	Channel  string `mapstructure:"EVENTS_CHANNEL"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"METRICS_NAMESPACE"`
}

var defaults = map[string]any{
	"PORT":              5000,
	"STATIC_DIR":        "public",
	"GIN_MODE":          "release",
	"DB_HOST":           "localhost",
	"DB_PORT":           5432,
	"DB_USER":           "postgres",
	"DB_PASSWORD":       "postgres",
	"DB_NAME":           "clinic_db",
	"DB_SSLMODE":        "disable",
	"DB_MAX_OPEN_CONNS": 1,
	"LOG_LEVEL":         "info",
	"LOG_PRETTY":        false,
	"REDIS_URL":         "",
	"EVENTS_CHANNEL":    "clinic.events",
	"METRICS_NAMESPACE": "clinic_api",
}

// LoadConfig reads defaults, then an optional config.yml from . or ./config,
// then the environment. Environment variables win.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	for key, value := range defaults {
		v.SetDefault(key, value)
		// AutomaticEnv alone is not consulted by Unmarshal
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// DSN builds a lib/pq connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(c.SSLMode)
	}
	return u.String()
}

// Addr is the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// EventsEnabled reports whether change events go to redis.
func (c EventsConfig) EventsEnabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}
