// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package config provides layered application configuration using Koanf v2.
//
// Configuration is assembled from three sources in increasing priority:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML config file (config.yaml, config.yml,
//     /etc/agrilens/config.yaml, or the path in CONFIG_PATH)
//  3. Environment variables
//
// # Quick Start
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
//
// # Environment Variables
//
// Only explicitly mapped variables are honored, so unrelated
// environment variables never leak into the configuration:
//
//	HTTP_HOST                  - listen address (default 0.0.0.0)
//	HTTP_PORT                  - listen port (default 8080)
//	HTTP_TIMEOUT               - request timeout (default 30s)
//	ENVIRONMENT                - development or production
//	CORS_ORIGINS               - comma-separated allowed origins
//	RATE_LIMIT_REQUESTS        - requests per window per client IP
//	RATE_LIMIT_WINDOW          - rate limit window (default 1m)
//	DISABLE_RATE_LIMIT         - true to disable rate limiting
//	ENGINE_TOP_K               - default ranked output size
//	ENGINE_CONFIDENCE_FLOOR    - minimum reported confidence
//	THRESHOLD_PH_LOW           - classifier pH lower bound
//	THRESHOLD_PH_HIGH          - classifier pH upper bound
//	LOG_LEVEL                  - trace, debug, info, warn, error
//	LOG_FORMAT                 - json or console
//
// # YAML File Example
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  timeout: 30s
//	api:
//	  cors_origins:
//	    - https://farm.example.com
//	  rate_limit_requests: 100
//	engine:
//	  top_k: 10
//	  thresholds:
//	    ph_low: 6.0
//	    ph_high: 7.5
//	logging:
//	  level: info
//	  format: json
//
// # Validation
//
// LoadWithKoanf validates the assembled configuration and returns a
// descriptive error when a setting is out of range, so misconfiguration
// fails fast at startup rather than surfacing at request time.
package config
