package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	APP struct {
		Name string `env:"SERVICE_NAME" envDefault:"useraccount"`
		Host string `env:"SERVICE_HOST" envDefault:"0.0.0.0"`
		Port string `env:"SERVICE_PORT" envDefault:"8000"`
		Env  string `env:"SERVICE_ENV" envDefault:"debug"`
	}
	DB struct {
		URL      string `env:"DATABASE_URL"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		Name     string `env:"POSTGRES_DB"`
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
		Migrate  bool   `env:"DB_MIGRATE" envDefault:"true"`
	}
	Auth struct {
		SecretKey                string `env:"SECRET_KEY"`
		Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
		AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
		BcryptCost               int    `env:"BCRYPT_COST" envDefault:"0"`
	}

	Config struct {
		App  APP
		DB   DB
		Auth Auth
	}
)

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return errors.New("invalid auth config: SECRET_KEY is required")
	}
	if c.Auth.AccessTokenExpireMinutes <= 0 {
		return errors.New("invalid auth config: ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("invalid auth config: unsupported ALGORITHM %q", c.Auth.Algorithm)
	}

	return nil
}

func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenExpireMinutes) * time.Minute
}

// DBDSN prefers DATABASE_URL and falls back to the POSTGRES_* parts.
func (c Config) DBDSN() (string, error) {
	if c.DB.URL != "" {
		return c.DB.URL, nil
	}
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}
