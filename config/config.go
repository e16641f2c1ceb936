package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from environment variables.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DBPath        string `env:"DB_PATH" envDefault:"./data/koperasi.db"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@usaha-bersama.id"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
