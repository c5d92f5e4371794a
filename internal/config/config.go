// Package config loads runtime settings from NEWSITEMS_* environment
// variables, with an optional .env file for local runs.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NEWSITEMS_"

// Store backends for the local API
const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config holds settings shared by the Lambda functions and the local tools
type Config struct {
	Table     string `koanf:"table" validate:"required"`
	Region    string `koanf:"region"`
	Profile   string `koanf:"profile"`
	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	SnapshotBucket string `koanf:"snapshot_bucket"`
	SubmitFunction string `koanf:"submit_function"`
	ListFunction   string `koanf:"list_function"`

	LocalAddr  string `koanf:"local_addr" validate:"required"`
	LocalStore string `koanf:"local_store" validate:"oneof=dynamodb memory"`
}

// Default returns the configuration used when no variables are set
func Default() *Config {
	return &Config{
		Table:          "newsitems",
		LogLevel:       "info",
		LogFormat:      "text",
		SubmitFunction: "addNewsitem",
		ListFunction:   "getNewsitems",
		LocalAddr:      ":8080",
		LocalStore:     StoreDynamoDB,
	}
}

// Load reads NEWSITEMS_* variables over the defaults and validates the result.
// NEWSITEMS_LOG_LEVEL maps to log_level, and so on.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
