package config

import (
	"fmt"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server    ServerConfig
		Database  DatabaseConfig
		CORS      CORSConfig
		Ingest    IngestConfig
		Dashboard DashboardConfig

		LogLevel string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	ServerConfig struct {
		Port string `env:"SERVER_PORT" default:"8000"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"taxi_user"`
		Password string `env:"DATABASE_PASSWORD" default:"taxi_pass"`
		Database string `env:"DATABASE_DATABASE" default:"taxi_db"`

		MaxConns int32 `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns int32 `env:"DATABASE_MINCONNS" default:"2"`
	}

	CORSConfig struct {
		// Comma-separated origin allowlist, "*" allows everyone.
		AllowedOrigins string `env:"CORS_ORIGINS" default:"*"`
	}

	IngestConfig struct {
		TokenSecret  string `env:"INGEST_TOKEN_SECRET" default:"supersecretkey"`
		DefaultTrips int    `env:"INGEST_DEFAULT_TRIPS" default:"1000"`
		Seed         int64  `env:"INGEST_SEED" default:"42"`
	}

	DashboardConfig struct {
		BroadcastInterval time.Duration `env:"DASHBOARD_BROADCAST_INTERVAL" default:"5s"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
