package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/cottand/worlds/format"
)

// Config holds the defaults of the command line, read from the environment.
// Flags override it.
type Config struct {
	Style    format.Style `env:"DATALOG_FORMAT"   envDefault:"plain"`
	LogLevel slog.Level   `env:"WORLDS_LOG_LEVEL" envDefault:"WARN"`
	// Lenient makes labels of partitionings missing from the world false instead of an error
	Lenient bool `env:"WORLDS_LENIENT"`
}

// FromEnv loads Config from the process environment
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// FromMap loads Config from environ instead of the process environment
func FromMap(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
