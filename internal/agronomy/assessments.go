// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

// Assessment holds the supplementary soil summaries reported alongside
// a classification. Every field is optional; an empty string means the
// measurements needed to compute it were absent.
type Assessment struct {
	// Drainage grades water movement from the sand/clay balance:
	// Excellent, Good, Moderate, or Poor.
	Drainage string

	// Texture is the broad coarseness grade: Coarse, Medium, or Fine.
	Texture string

	// NutrientBalance grades how many of N/P/K meet their reference
	// levels: excellent, good, fair, or poor.
	NutrientBalance string

	// OrganicMatterStatus grades the organic matter content.
	OrganicMatterStatus string

	// PHStatus is optimal, acidic, or alkaline.
	PHStatus string
}

// Assess derives the supplementary summaries for a sample. Fields
// whose inputs are absent are left empty.
func (c *Classifier) Assess(sample SoilSample, classification SoilClassification) Assessment {
	t := c.thresholds

	return Assessment{
		Drainage:            drainage(sample),
		Texture:             classification.TextureClass.Coarseness(),
		NutrientBalance:     nutrientBalance(sample, t),
		OrganicMatterStatus: organicMatterStatus(sample),
		PHStatus:            phStatus(sample, t),
	}
}

// drainage grades drainage from the sand and clay fractions. Both must
// be present.
func drainage(sample SoilSample) string {
	sand, okSand := clamped(sample.Sand, 0, 100)
	clay, okClay := clamped(sample.Clay, 0, 100)
	if !okSand || !okClay {
		return ""
	}
	switch {
	case sand >= 60:
		return "Excellent"
	case sand >= 40:
		return "Good"
	case clay >= 50:
		return "Poor"
	default:
		return "Moderate"
	}
}

// nutrientBalance counts how many of the present N/P/K measurements
// meet their reference minimums. Empty when none are present.
func nutrientBalance(sample SoilSample, t Thresholds) string {
	type nutrient struct {
		value *float64
		ref   float64
	}
	nutrients := []nutrient{
		{sample.Nitrogen, t.NitrogenMin},
		{sample.Phosphorus, t.PhosphorusMin},
		{sample.Potassium, t.PotassiumMin},
	}

	present, adequate := 0, 0
	for _, n := range nutrients {
		if n.value == nil {
			continue
		}
		present++
		if *n.value >= n.ref {
			adequate++
		}
	}
	if present == 0 {
		return ""
	}

	switch adequate {
	case 3:
		return "excellent"
	case 2:
		return "good"
	case 1:
		return "fair"
	default:
		return "poor"
	}
}

// organicMatterStatus grades organic matter content in percent.
func organicMatterStatus(sample SoilSample) string {
	om, ok := clamped(sample.OrganicMatter, 0, 100)
	if !ok {
		return ""
	}
	switch {
	case om >= 5:
		return "excellent"
	case om >= 3:
		return "good"
	case om >= 2:
		return "fair"
	default:
		return "poor"
	}
}

// phStatus reports whether pH sits inside the optimal band.
func phStatus(sample SoilSample, t Thresholds) string {
	ph, ok := clamped(sample.PH, 0, 14)
	if !ok {
		return ""
	}
	switch {
	case ph < t.PHLow:
		return "acidic"
	case ph > t.PHHigh:
		return "alkaline"
	default:
		return "optimal"
	}
}
