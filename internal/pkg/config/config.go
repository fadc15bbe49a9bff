package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// GeminiAPIKey is optional; when empty the two AI-assist endpoints answer
	// with a configuration error instead of crashing the process.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	DB DBConfig
}

type DBConfig struct {
	// URL overrides the discrete settings below when set.
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD, default=postgres"`
	Name     string `env:"DB_NAME,     default=recruiting"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// DSN returns the connection string: the full DATABASE_URL when provided,
// otherwise one assembled from the discrete settings.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
