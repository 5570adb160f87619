// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package catalog holds the immutable crop profile registry. The
// catalog is built once at startup from a static table and shared
// read-only across concurrent requests.
package catalog

import (
	"github.com/agrilens/agrilens/internal/agronomy"
)

// WaterRequirement is a crop's categorical water demand.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "low"
	WaterMedium WaterRequirement = "medium"
	WaterHigh   WaterRequirement = "high"
)

// String returns the requirement name.
func (w WaterRequirement) String() string {
	return string(w)
}

// Rank orders the categories low < medium < high so category distance
// can be computed. Unknown values rank as medium.
func (w WaterRequirement) Rank() int {
	switch w {
	case WaterLow:
		return 0
	case WaterHigh:
		return 2
	default:
		return 1
	}
}

// Season identifies a crop's growing season.
type Season string

const (
	SeasonKharif    Season = "kharif"
	SeasonRabi      Season = "rabi"
	SeasonZaid      Season = "zaid"
	SeasonPerennial Season = "perennial"
)

// String returns the season name.
func (s Season) String() string {
	return string(s)
}

// Range is an inclusive [Low, High] optimal band for a measurement.
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether v lies inside the band.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// CropProfile is one immutable catalog entry: the agronomic optimums
// and the financial planning assumptions for a crop.
type CropProfile struct {
	// Name is the unique, lowercase crop name.
	Name string

	// OptimalPH and OptimalTemp are the bands scored with full marks.
	// Temperature is in degrees Celsius.
	OptimalPH   Range
	OptimalTemp Range

	// WaterRequirement is the categorical water demand matched against
	// measured soil moisture.
	WaterRequirement WaterRequirement

	// SoilTypes lists the texture classes the crop tolerates.
	SoilTypes []agronomy.TextureClass

	// Season is the growing season, reported for display.
	Season Season

	// BaseYieldPerArea and BaseCostPerArea are the planning
	// assumptions per unit area for a perfectly suited planting.
	BaseYieldPerArea float64
	BaseCostPerArea  float64

	// BaseMarketPrice and Unit are the fallback quote used when the
	// caller supplies no live market data for the crop.
	BaseMarketPrice float64
	Unit            string
}

// Tolerates reports whether the texture class appears in the crop's
// compatible soil types.
func (p CropProfile) Tolerates(class agronomy.TextureClass) bool {
	for _, t := range p.SoilTypes {
		if t == class {
			return true
		}
	}
	return false
}
