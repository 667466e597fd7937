package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type LoggerConfig struct {
	Endpoint     string `envconfig:"OTEL_ENDPOINT" default:"localhost:4317"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"online-shop"`
	IsProduction bool   `envconfig:"IS_PRODUCTION" default:"false"`
}

type ShopConfig struct {
	Currency string `envconfig:"SHOP_CURRENCY" default:"USD"`
}

type Config struct {
	Logger LoggerConfig
	Shop   ShopConfig
}

// NewConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to load logger config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Shop); err != nil {
		return nil, fmt.Errorf("failed to load shop config: %w", err)
	}
	return &cfg, nil
}
