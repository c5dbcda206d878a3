package cmd

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds the application settings, populated from the process
// environment. A .env file in the working directory is loaded first when
// present; real environment variables win over .env entries.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"ordering"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// LoadConfig reads the configuration from .env and the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return config, nil
}

// DSN builds the postgres connection string from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
