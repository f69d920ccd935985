// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles the settings of the import command.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Values reach the importer and services via constructors.
  - Zero Hidden State: No global variables are used to store config.

The credential and hashing packages never read configuration.
*/
package config

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the import command.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// ImportWorkers is the number of parallel GJP2 derivations. Zero selects
	// one worker per CPU.
	ImportWorkers int `env:"IMPORT_WORKERS" envDefault:"0"`

	// ImportFirstID is the account id assigned to the first imported row.
	ImportFirstID uint64 `env:"IMPORT_FIRST_ID" envDefault:"1"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.ImportWorkers < 0 {
		return nil, fmt.Errorf("config: IMPORT_WORKERS must not be negative, got %d", cfg.ImportWorkers)
	}

	return cfg, nil
}

// Workers returns the effective worker count.
func (c *Config) Workers() int {
	if c.ImportWorkers == 0 {
		return runtime.NumCPU()
	}
	return c.ImportWorkers
}

// IsDevelopment reports whether the command is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the command is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
