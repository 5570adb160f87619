// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package engine implements the crop suitability recommendation
// engine: per-crop multi-criteria scoring with missing-data tolerance,
// confidence estimation, financial projections, and deterministic
// ranking over the crop catalog.
package engine

import (
	"github.com/agrilens/agrilens/internal/agronomy"
	"github.com/agrilens/agrilens/internal/catalog"
)

// MarketQuote is a live market quote for one crop, supplied by the
// caller. When absent, the catalog's fallback price is used.
type MarketQuote struct {
	CurrentPrice       float64 `json:"current_price"`
	Unit               string  `json:"unit"`
	DemandLevel        string  `json:"demand_level"`
	MarketTrend        string  `json:"market_trend"`
	PriceChangePercent float64 `json:"price_change_percent"`
}

// SuitabilityResult is the agronomic fit of one crop for one
// (soil, weather) pair.
type SuitabilityResult struct {
	// CropName identifies the scored crop.
	CropName string

	// Score is the 0-100 mean over present factor scores.
	Score float64

	// Confidence (0.2-1.0) reflects how many of the four possible
	// factors could be evaluated.
	Confidence float64

	// Factors holds one human-readable explanation per present
	// factor, ordered by that factor's score descending.
	Factors []string
}

// Financials are the planning projections derived from a suitability
// score.
type Financials struct {
	Yield   float64
	Cost    float64
	Revenue float64
	Profit  float64
	Margin  float64
}

// Recommendation is one ranked entry in the engine output.
type Recommendation struct {
	Profile       catalog.CropProfile
	Suitability   SuitabilityResult
	Financials    Financials
	Quote         MarketQuote
	ExceedsBudget bool
}

// Request carries one recommendation computation. All entities are
// request-scoped values; nothing persists inside the engine.
type Request struct {
	// Soil is the measured sample. Sparse samples are scored on
	// whatever factors are present.
	Soil agronomy.SoilSample

	// Weather optionally supplies the temperature factor.
	Weather *agronomy.WeatherSnapshot

	// Area is the farm size in area units. Must be positive.
	Area float64

	// Budget is advisory: results whose estimated cost exceeds it are
	// flagged, never filtered. Zero disables the flag.
	Budget float64

	// MarketByCrop optionally maps crop names to live quotes.
	MarketByCrop map[string]MarketQuote

	// Limit caps the ranked output. Zero means the configured default.
	Limit int
}

// Result is the assembled engine output.
type Result struct {
	// Classification and Assessment describe the soil itself,
	// computed once and shared across all crop scores.
	Classification agronomy.SoilClassification
	Assessment     agronomy.Assessment

	// Recommendations is the ranked, truncated crop list.
	Recommendations []Recommendation

	// MoreCount is the number of scored crops omitted by truncation.
	MoreCount int
}
