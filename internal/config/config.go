package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds service configuration.
type Config struct {
	ServerAddr    string        `mapstructure:"SERVER_ADDR"`
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	MigrationsDir string        `mapstructure:"MIGRATIONS_DIR"`
	StatsCacheTTL time.Duration `mapstructure:"STATS_CACHE_TTL"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from a .env file when present and from the
// environment. DATABASE_URL wins; otherwise the DSN is composed from the
// individual POSTGRES_* variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("SERVER_ADDR", "0.0.0.0:8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MIGRATIONS_DIR", "internal/migrations")
	v.SetDefault("STATS_CACHE_TTL", "5s")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("POSTGRES_USER", "balancer")
	v.SetDefault("POSTGRES_PASSWORD", "balancer_pass")
	v.SetDefault("POSTGRES_DB", "balancer")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			v.GetString("POSTGRES_USER"), v.GetString("POSTGRES_PASSWORD"),
			v.GetString("POSTGRES_HOST"), v.GetString("POSTGRES_PORT"),
			v.GetString("POSTGRES_DB"), v.GetString("DATABASE_SSLMODE"))
	}
	return &cfg, nil
}
