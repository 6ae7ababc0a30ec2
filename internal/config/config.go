package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration from environment.
type Config struct {
	HTTPPort     string
	DatabaseURL  string
	DBPoolSize   int
	QueryTimeout time.Duration
	JWTSecret    string
}

// Load reads configuration once at startup. A .env file in the working
// directory is read if present; real environment variables take precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; everything can come from the environment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_POOL_SIZE", 20)
	v.SetDefault("DB_QUERY_TIMEOUT_MS", 5000)

	cfg := &Config{
		HTTPPort:     v.GetString("HTTP_PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBPoolSize:   v.GetInt("DB_POOL_SIZE"),
		QueryTimeout: time.Duration(v.GetInt("DB_QUERY_TIMEOUT_MS")) * time.Millisecond,
		JWTSecret:    v.GetString("JWT_SECRET"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return cfg, nil
}
