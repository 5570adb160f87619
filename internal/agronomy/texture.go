// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

// TextureClass is a USDA soil texture category derived from the
// clay/sand/silt particle size distribution.
type TextureClass string

// The twelve USDA texture classes plus the sentinel for samples
// missing one or more particle size measurements.
const (
	TextureSand          TextureClass = "sand"
	TextureLoamySand     TextureClass = "loamy sand"
	TextureSandyLoam     TextureClass = "sandy loam"
	TextureLoam          TextureClass = "loam"
	TextureSiltLoam      TextureClass = "silt loam"
	TextureSilt          TextureClass = "silt"
	TextureSandyClayLoam TextureClass = "sandy clay loam"
	TextureClayLoam      TextureClass = "clay loam"
	TextureSiltyClayLoam TextureClass = "silty clay loam"
	TextureSandyClay     TextureClass = "sandy clay"
	TextureSiltyClay     TextureClass = "silty clay"
	TextureClay          TextureClass = "clay"
	TextureUnknown       TextureClass = "unknown"
)

// String returns the class name.
func (t TextureClass) String() string {
	return string(t)
}

// Known reports whether the class is one of the twelve USDA classes.
func (t TextureClass) Known() bool {
	return t != TextureUnknown && t != ""
}

// textureRule is one inequality test of the texture triangle. Rules
// are evaluated top to bottom; the first match wins.
type textureRule struct {
	class TextureClass
	match func(clay, sand, silt float64) bool
}

// textureRules encodes the USDA texture triangle as an ordered rule
// table over normalized percentages (clay+sand+silt == 100).
var textureRules = []textureRule{
	{TextureSand, func(clay, sand, silt float64) bool {
		return sand >= 85 && silt+1.5*clay <= 15
	}},
	{TextureLoamySand, func(clay, sand, silt float64) bool {
		return sand >= 70 && silt+2*clay <= 30
	}},
	{TextureSiltyClay, func(clay, sand, silt float64) bool {
		return clay >= 40 && silt >= 40
	}},
	{TextureSandyClay, func(clay, sand, silt float64) bool {
		return clay >= 35 && sand >= 45
	}},
	{TextureClay, func(clay, sand, silt float64) bool {
		return clay >= 40
	}},
	{TextureSiltyClayLoam, func(clay, sand, silt float64) bool {
		return clay >= 27 && sand <= 20
	}},
	{TextureClayLoam, func(clay, sand, silt float64) bool {
		return clay >= 27 && sand <= 45
	}},
	{TextureSandyClayLoam, func(clay, sand, silt float64) bool {
		return clay >= 20 && sand >= 45 && silt <= 28
	}},
	{TextureSilt, func(clay, sand, silt float64) bool {
		return silt >= 80 && clay <= 12
	}},
	{TextureSiltLoam, func(clay, sand, silt float64) bool {
		return silt >= 50
	}},
	{TextureLoam, func(clay, sand, silt float64) bool {
		return clay >= 7 && silt >= 28 && sand <= 52
	}},
	// Everything remaining sits in the sandy loam region.
	{TextureSandyLoam, func(clay, sand, silt float64) bool {
		return true
	}},
}

// ClassifyTexture maps a particle size distribution to a USDA texture
// class. All three fractions must be present; otherwise the result is
// TextureUnknown. Present fractions are clamped to 0-100 and
// normalized to sum to 100 before the rule table is applied.
func ClassifyTexture(clay, sand, silt *float64) TextureClass {
	c, okC := clamped(clay, 0, 100)
	sa, okSa := clamped(sand, 0, 100)
	si, okSi := clamped(silt, 0, 100)
	if !okC || !okSa || !okSi {
		return TextureUnknown
	}

	total := c + sa + si
	if total <= 0 {
		return TextureUnknown
	}
	c = c / total * 100
	sa = sa / total * 100
	si = si / total * 100

	for _, rule := range textureRules {
		if rule.match(c, sa, si) {
			return rule.class
		}
	}
	return TextureUnknown
}

// textureDesirability rates each class 0-100 for general cultivation.
// Loams hold water and nutrients without impeding drainage; pure sand
// and pure clay sit at the bottom.
var textureDesirability = map[TextureClass]float64{
	TextureLoam:          100,
	TextureSiltLoam:      90,
	TextureSiltyClayLoam: 75,
	TextureClayLoam:      75,
	TextureSandyClayLoam: 70,
	TextureSilt:          70,
	TextureSandyLoam:     65,
	TextureLoamySand:     45,
	TextureSandyClay:     45,
	TextureSiltyClay:     40,
	TextureSand:          25,
	TextureClay:          25,
}

// Desirability returns the cultivation desirability score for the
// class. The second return is false for TextureUnknown.
func (t TextureClass) Desirability() (float64, bool) {
	score, ok := textureDesirability[t]
	return score, ok
}

// Coarseness buckets the class into the broad Coarse/Medium/Fine
// grades used in analysis summaries. Empty for TextureUnknown.
func (t TextureClass) Coarseness() string {
	switch t {
	case TextureSand, TextureLoamySand, TextureSandyLoam:
		return "Coarse"
	case TextureClay, TextureSiltyClay, TextureSandyClay:
		return "Fine"
	case TextureUnknown, "":
		return ""
	default:
		return "Medium"
	}
}
