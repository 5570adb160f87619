// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import "fmt"

// ValidationError rejects a request before any scoring begins.
// Missing or out-of-range soil and weather attributes are never
// validation errors; they only reduce the evaluated factor set.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// newValidationError builds a ValidationError for a request field.
func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
