// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

// diagnosticRule appends its message when the guard fires. Rules are
// independent and can co-fire; output order is rule order, not
// severity order. Guards return false for absent measurements.
type diagnosticRule struct {
	guard   func(s SoilSample, t Thresholds) bool
	message string
}

var diagnosticRules = []diagnosticRule{
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.PH != nil && *s.PH < 5.5
		},
		message: "Soil is acidic. Apply agricultural lime to raise pH.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.PH != nil && *s.PH > 8.0
		},
		message: "Soil is alkaline. Apply elemental sulfur or acidifying organic matter to lower pH.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Nitrogen != nil && *s.Nitrogen < t.NitrogenMin
		},
		message: "Nitrogen is below the reference level. Apply nitrogen fertilizer or plant legume cover crops.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Phosphorus != nil && *s.Phosphorus < t.PhosphorusMin
		},
		message: "Phosphorus is below the reference level. Apply phosphate fertilizer or bone meal.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Potassium != nil && *s.Potassium < t.PotassiumMin
		},
		message: "Potassium is below the reference level. Apply potash fertilizer or wood ash.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.OrganicMatter != nil && *s.OrganicMatter < 1.5
		},
		message: "Organic matter is very low. Add compost or well-rotted manure.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.OrganicMatter != nil && *s.OrganicMatter >= 1.5 && *s.OrganicMatter < t.OrganicMatterMin
		},
		message: "Organic matter is low. Incorporate green manure or crop residues.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Moisture != nil && *s.Moisture < 0.2
		},
		message: "Soil moisture is low. Consider irrigation or mulching to retain water.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Moisture != nil && *s.Moisture > 0.4
		},
		message: "Soil moisture is high. Improve drainage to avoid waterlogging.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Clay != nil && *s.Clay >= 50
		},
		message: "Heavy clay content impedes drainage. Consider raised beds or drainage channels.",
	},
	{
		guard: func(s SoilSample, t Thresholds) bool {
			return s.Sand != nil && *s.Sand >= 60
		},
		message: "Sandy soil drains quickly. Water and fertilize in smaller, more frequent doses.",
	},
}

// diagnose evaluates the rule table in order and collects the messages
// whose guards fire.
func diagnose(sample SoilSample, t Thresholds) []string {
	var messages []string
	for _, rule := range diagnosticRules {
		if rule.guard(sample, t) {
			messages = append(messages, rule.message)
		}
	}
	return messages
}
