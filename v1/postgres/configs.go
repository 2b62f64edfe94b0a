package postgres

import (
	"fmt"
	"time"
)

// Config holds connection settings for the pgvector-backed adapter.
type Config struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DATABASE"`
	SSLMode  string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE"`

	// Maximum duration for establishing the initial connection.
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"POSTGRES_CONNECT_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for local development.
func DefaultConfig() *Config {
	return &Config{
		Host:           "localhost",
		Port:           5432,
		User:           "postgres",
		Database:       "postgres",
		SSLMode:        "disable",
		ConnectTimeout: 5 * time.Second,
	}
}

// DSN renders the config as a libpq-style connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
