// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package config

import (
	"fmt"
	"time"

	"github.com/agrilens/agrilens/internal/engine"
)

// Config holds all application configuration, loaded from defaults,
// an optional YAML file, and environment variables in that order of
// precedence.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Engine  engine.Config `koanf:"engine"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Defaults to all interfaces.
	Host string `koanf:"host"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// Timeout bounds request read and write durations.
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production". Production mode
	// tightens validation of outward-facing settings.
	Environment string `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds API surface settings: CORS and rate limiting.
type APIConfig struct {
	// CORSOrigins lists allowed cross-origin request origins.
	// Empty means cross-origin requests are rejected.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests is the number of requests allowed per client
	// IP per RateLimitWindow.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limiting window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off rate limiting entirely. Intended
	// for tests and trusted internal deployments.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes the caller file:line in each entry.
	Caller bool `koanf:"caller"`
}

// Validate checks the configuration for consistency. It is called
// automatically by LoadWithKoanf.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests <= 0 {
			return fmt.Errorf("api.rate_limit_requests must be positive, got %d", c.API.RateLimitRequests)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
		}
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}
