package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/jonwraymond/vizexec/remote"
)

// Config holds settings sourced from VIZGEN_* environment variables.
type Config struct {
	Endpoint    string        `envconfig:"ENDPOINT" default:"http://localhost:8080/launch-container"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
	Environment string        `envconfig:"ENVIRONMENT" default:"development"`
	Language    string        `envconfig:"LANGUAGE"`
	OutputMode  string        `envconfig:"OUTPUT_MODE" default:"interactive"`
}

// LoadConfig loads envFile if it exists and processes the environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var c Config
	if err := envconfig.Process("vizgen", &c); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	return c, nil
}

// RemoteConfig returns the client configuration.
func (c Config) RemoteConfig(logger remote.Logger) remote.Config {
	return remote.Config{
		Endpoint: c.Endpoint,
		Timeout:  c.Timeout,
		Logger:   logger,
	}
}
