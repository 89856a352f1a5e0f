// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components explicitly.
*/
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Supported log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// # Configuration Schema

// Config holds all runtime configuration for the movies CLI.
type Config struct {

	// MoviesFile is the source file used when no argument is given.
	MoviesFile string `env:"MOVIES_FILE"`

	// Logging
	LogLevel  slog.Level `env:"MOVIES_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string     `env:"MOVIES_LOG_FORMAT" envDefault:"text"`
	Debug     bool       `env:"MOVIES_DEBUG"      envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.LogFormat != FormatText && cfg.LogFormat != FormatJSON {
		return nil, fmt.Errorf("config: unsupported MOVIES_LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Level returns the effective log level. Debug mode always wins.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return c.LogLevel
}
