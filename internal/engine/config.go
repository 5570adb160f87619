// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import (
	"fmt"

	"github.com/agrilens/agrilens/internal/agronomy"
)

// Config holds engine tuning. The numeric thresholds are deliberately
// configurable rather than load-bearing constants.
type Config struct {
	// TopK is the default ranked output size when a request does not
	// specify a limit.
	TopK int `koanf:"top_k" validate:"gt=0"`

	// ConfidenceFloor is the minimum confidence reported when at
	// least one factor is present.
	ConfidenceFloor float64 `koanf:"confidence_floor" validate:"gte=0,lte=1"`

	// MoistureLowMax and MoistureMediumMax bound the low and medium
	// moisture categories (volumetric fraction). Values above
	// MoistureMediumMax are high.
	MoistureLowMax    float64 `koanf:"moisture_low_max" validate:"gt=0,lt=1"`
	MoistureMediumMax float64 `koanf:"moisture_medium_max" validate:"gt=0,lt=1"`

	// Thresholds configures the soil classifier.
	Thresholds agronomy.Thresholds `koanf:"thresholds"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		TopK:              10,
		ConfidenceFloor:   0.2,
		MoistureLowMax:    0.2,
		MoistureMediumMax: 0.4,
		Thresholds:        agronomy.DefaultThresholds(),
	}
}

// Validate checks configuration consistency.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.ConfidenceFloor < 0 || c.ConfidenceFloor > 1 {
		return fmt.Errorf("confidence_floor must be in [0, 1], got %v", c.ConfidenceFloor)
	}
	if c.MoistureLowMax <= 0 || c.MoistureMediumMax <= c.MoistureLowMax || c.MoistureMediumMax >= 1 {
		return fmt.Errorf("moisture category bounds out of order: low max %v, medium max %v",
			c.MoistureLowMax, c.MoistureMediumMax)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	return nil
}
