// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for ircat.
//
// Configuration is loaded from a single file specified by:
//   - IRCAT_CONFIG environment variable, or
//   - --config flag passed to the command
//
// The file is optional: every field has a compiled-in default, matching
// the knobs that used to be baked in at build time (default remote port,
// debug logging, path to an external terminal client). A config file
// overrides only the fields it sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the config file.
const EnvVar = "IRCAT_CONFIG"

// DefaultPort is the IRC plaintext port used when no port argument is
// given and no config file overrides it.
const DefaultPort = 6667

// Config is the ircat configuration.
type Config struct {
	// DefaultPort is the remote port used when the command line omits
	// one. Must be in 1-65535.
	DefaultPort int `yaml:"default_port"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`

	// ExternalClient is the path of an external terminal client binary
	// to relay through instead of dialing the remote host directly. The
	// binary is invoked as "<path> <host> <port>" and spoken to over its
	// standard input and output. Empty means direct TCP.
	ExternalClient string `yaml:"external_client"`

	// ChunkSize is the maximum number of bytes moved per read in the
	// relay loop.
	ChunkSize int `yaml:"chunk_size"`

	// ShutdownGrace is how long to wait for an external client process
	// to exit after its pipes are closed before it is killed. A Go
	// duration string, e.g. "3s".
	ShutdownGrace string `yaml:"shutdown_grace"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		DefaultPort:   DefaultPort,
		Debug:         false,
		ChunkSize:     1024,
		ShutdownGrace: "3s",
	}
}

// Load loads configuration from the IRCAT_CONFIG environment variable.
// When the variable is unset, the compiled defaults are returned.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merged over
// the compiled defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.DefaultPort < 1 || c.DefaultPort > 65535 {
		errs = append(errs, fmt.Errorf("default_port %d out of range 1-65535", c.DefaultPort))
	}
	if c.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize))
	}
	if _, err := time.ParseDuration(c.ShutdownGrace); err != nil {
		errs = append(errs, fmt.Errorf("shutdown_grace: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ShutdownGraceDuration returns the parsed shutdown grace period.
// Validate must have accepted the config first.
func (c *Config) ShutdownGraceDuration() time.Duration {
	d, err := time.ParseDuration(c.ShutdownGrace)
	if err != nil {
		return 3 * time.Second
	}
	return d
}
