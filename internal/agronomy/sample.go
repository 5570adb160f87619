// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

// SoilSample holds measured or estimated soil attributes.
// Every field is optional; a nil pointer means the attribute was not
// measured, which is distinct from a measured zero.
type SoilSample struct {
	// PH is the soil pH (0-14).
	PH *float64

	// Nitrogen, Phosphorus, and Potassium are caller-normalized
	// nutrient levels (mass fraction or ppm, matching the reference
	// thresholds in use).
	Nitrogen   *float64
	Phosphorus *float64
	Potassium  *float64

	// Moisture is the volumetric water fraction (0-1).
	Moisture *float64

	// Temperature is the soil temperature in degrees Celsius.
	Temperature *float64

	// Clay, Sand, and Silt are particle size percentages (0-100).
	// Texture classification requires all three.
	Clay *float64
	Sand *float64
	Silt *float64

	// OrganicMatter is the organic matter content in percent (0-100).
	OrganicMatter *float64
}

// WeatherSnapshot holds current weather conditions. Optional; absence
// disables the temperature and humidity scoring factors.
type WeatherSnapshot struct {
	// Temperature is the air temperature in degrees Celsius.
	Temperature *float64

	// Humidity is the relative humidity in percent (0-100).
	Humidity *float64
}

// Float returns a pointer to v. Convenience constructor for optional
// measurement fields.
func Float(v float64) *float64 {
	return &v
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamped dereferences an optional measurement and bounds it to its
// physical range. Returns (0, false) when the measurement is absent.
func clamped(v *float64, lo, hi float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return Clamp(*v, lo, hi), true
}

// nonNegative dereferences an optional measurement with no upper
// physical bound, flooring it at zero.
func nonNegative(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if *v < 0 {
		return 0, true
	}
	return *v, true
}
