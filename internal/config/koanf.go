// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/agrilens/agrilens/internal/engine"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/agrilens/config.yaml",
	"/etc/agrilens/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the
// config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible defaults.
// These are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			CORSOrigins:       []string{},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Engine: engine.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config File: optional YAML config file (if it exists)
//  3. Environment Variables: override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as
// comma-separated slices when supplied via environment variables.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices
// for known slice fields. Env vars come in as strings but the config
// expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config
// paths. Unmapped variables are skipped so that unrelated environment
// variables never pollute the configuration.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - LOG_LEVEL -> logging.level
//   - ENGINE_TOP_K -> engine.top_k
//   - THRESHOLD_PH_LOW -> engine.thresholds.ph_low
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// API mappings
		"cors_origins":        "api.cors_origins",
		"rate_limit_requests": "api.rate_limit_requests",
		"rate_limit_window":   "api.rate_limit_window",
		"disable_rate_limit":  "api.rate_limit_disabled",

		// Engine mappings
		"engine_top_k":               "engine.top_k",
		"engine_confidence_floor":    "engine.confidence_floor",
		"engine_moisture_low_max":    "engine.moisture_low_max",
		"engine_moisture_medium_max": "engine.moisture_medium_max",

		// Classifier threshold mappings
		"threshold_ph_low":               "engine.thresholds.ph_low",
		"threshold_ph_high":              "engine.thresholds.ph_high",
		"threshold_nitrogen_min":         "engine.thresholds.nitrogen_min",
		"threshold_phosphorus_min":       "engine.thresholds.phosphorus_min",
		"threshold_potassium_min":        "engine.thresholds.potassium_min",
		"threshold_organic_matter_min":   "engine.thresholds.organic_matter_min",
		"threshold_fertility_weight":     "engine.thresholds.fertility_weight",
		"threshold_texture_weight":       "engine.thresholds.texture_weight",
		"threshold_fertility_high_min":   "engine.thresholds.fertility_high_min",
		"threshold_fertility_medium_min": "engine.thresholds.fertility_medium_min",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Skip unmapped keys
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// The caller is responsible for mutex protection when swapping
// configuration during reloads.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
