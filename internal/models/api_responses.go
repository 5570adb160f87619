// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package models

import "time"

// ErrorResponse is the envelope for all error responses. Successful
// responses are returned flat; only failures are wrapped so clients
// can detect them uniformly.
type ErrorResponse struct {
	Status    string    `json:"status"`
	Error     *APIError `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError carries structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - NOT_FOUND: resource does not exist
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus reports process health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
