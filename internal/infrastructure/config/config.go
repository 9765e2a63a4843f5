package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "PROJECTBOARD_"

const (
	IDStrategyUUID    = "uuid"
	IDStrategyCounter = "counter"
)

// OTEL holds metrics exporter configuration.
type OTEL struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Endpoint string `env:"ENDPOINT"`
	Insecure bool   `env:"INSECURE" envDefault:"false"`
}

// Redis holds snapshot publishing configuration. An empty Addr disables it.
type Redis struct {
	Addr    string `env:"ADDR"`
	Channel string `env:"CHANNEL" envDefault:"projectboard:snapshots"`
}

// Server holds configuration for the board server.
type Server struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogDev     bool   `env:"LOG_DEV" envDefault:"false"`
	IDStrategy string `env:"ID_STRATEGY" envDefault:"uuid"`
	OTEL       OTEL   `envPrefix:"OTEL_"`
	Redis      Redis  `envPrefix:"REDIS_"`
}

// LoadServer loads an optional .env file, then server configuration from
// environment variables.
func LoadServer() (*Server, error) {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()
	return parse(env.Options{Prefix: envPrefix})
}

func parse(opts env.Options) (*Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Server) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%sPORT out of range: %d", envPrefix, c.Port)
	}
	switch c.IDStrategy {
	case IDStrategyUUID, IDStrategyCounter:
	default:
		return fmt.Errorf("%sID_STRATEGY must be %q or %q, got %q", envPrefix, IDStrategyUUID, IDStrategyCounter, c.IDStrategy)
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		return errors.New(envPrefix + "OTEL_ENDPOINT is required when OTEL is enabled")
	}
	return nil
}
