// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import (
	"github.com/agrilens/agrilens/internal/catalog"
)

// Estimator converts suitability scores into yield, cost, and profit
// projections. Stateless; safe for concurrent use.
type Estimator struct{}

// NewEstimator creates an estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate projects financials for planting one crop over the given
// area. Yield scales with suitability between half and full base
// rate, so a poorly suited crop still models minimum viable output.
// Cost is suitability-independent: poor-fit crops require the same
// inputs. Margin is 0, not a division error, when revenue is 0.
func (e *Estimator) Estimate(profile catalog.CropProfile, suitabilityScore, area float64, quote *MarketQuote) Financials {
	yield := profile.BaseYieldPerArea * area * (0.5 + 0.5*suitabilityScore/100)
	cost := profile.BaseCostPerArea * area

	price := profile.BaseMarketPrice
	if quote != nil {
		price = quote.CurrentPrice
	}

	revenue := yield * price
	profit := revenue - cost

	var margin float64
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	return Financials{
		Yield:   yield,
		Cost:    cost,
		Revenue: revenue,
		Profit:  profit,
		Margin:  margin,
	}
}
