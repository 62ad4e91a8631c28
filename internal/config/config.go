// File: internal/config/config.go
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries every runtime setting, loaded once at process start and
// passed down explicitly. No package reads the environment on its own.
type Config struct {
	HTTPAddr      string        `env:"HTTP_ADDR" env-default:":8080"`
	DatabaseURL   string        `env:"DATABASE_URL" env-required:"true"`
	RedisAddr     string        `env:"REDIS_ADDR" env-required:"true"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	JWTSecret     string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"30s"`
	WorkerCount   int           `env:"WORKER_COUNT" env-default:"1"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
