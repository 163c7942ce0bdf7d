package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cottand/worlds/internal/config"
	"github.com/cottand/worlds/internal/log"
	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/worlds"
	"github.com/spf13/cobra"
)

var cliLogger = slog.New(sentence.SlogHandler(log.DefaultLogger.Handler())).With("section", "cli")

// loadEnv is replaced in tests
var loadEnv = config.FromEnv

func addLogLevelFlag(c *cobra.Command) *string {
	return c.Flags().StringP("log-level", "l", "", "log level (debug, info, warn, error), defaults to $WORLDS_LOG_LEVEL")
}

// setup reads the configuration, applies the log level flag
// and parses the sentence argument
func setup(c *cobra.Command, logLevel string, src string) (config.Config, *worlds.Query, error) {
	cfg, err := loadEnv()
	if err != nil {
		return config.Config{}, nil, err
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return config.Config{}, nil, fmt.Errorf("bad log level: %w", err)
		}
	}
	log.SetLevel(cfg.LogLevel)

	q, err := worlds.NewQuery(src)
	if err != nil {
		return config.Config{}, nil, errors.New(worlds.Describe(err))
	}
	cliLogger.Info("parsed", "command", c.Name(), "sentence", q.Sentence())
	return cfg, q, nil
}
