// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

import "fmt"

// FertilityLevel is the coarse fertility grade derived from the
// fertility composite score.
type FertilityLevel string

const (
	FertilityLow    FertilityLevel = "low"
	FertilityMedium FertilityLevel = "medium"
	FertilityHigh   FertilityLevel = "high"
)

// String returns the level name.
func (f FertilityLevel) String() string {
	return string(f)
}

// SoilClassification is the result of classifying one soil sample.
type SoilClassification struct {
	// TextureClass is the USDA texture class, or TextureUnknown when
	// clay/sand/silt are not all present.
	TextureClass TextureClass

	// FertilityLevel grades the fertility composite.
	FertilityLevel FertilityLevel

	// QualityScore is the 0-100 composite of fertility and texture
	// desirability.
	QualityScore float64

	// Fertility is the 0-100 fertility composite over the present
	// nutrient and pH measurements.
	Fertility float64

	// Recommendations holds diagnostic messages in rule evaluation
	// order.
	Recommendations []string
}

// Thresholds holds the reference values and weights used by the
// classifier. The defaults encode common agronomic reference points;
// deploys with different nutrient units override them in config.
type Thresholds struct {
	// PHLow and PHHigh bound the pH range considered optimal for
	// general cultivation.
	PHLow  float64 `koanf:"ph_low" validate:"gte=0,lte=14"`
	PHHigh float64 `koanf:"ph_high" validate:"gte=0,lte=14,gtefield=PHLow"`

	// NitrogenMin, PhosphorusMin, and PotassiumMin are the reference
	// minimums below which a nutrient is penalized.
	NitrogenMin   float64 `koanf:"nitrogen_min" validate:"gt=0"`
	PhosphorusMin float64 `koanf:"phosphorus_min" validate:"gt=0"`
	PotassiumMin  float64 `koanf:"potassium_min" validate:"gt=0"`

	// OrganicMatterMin is the organic matter percentage below which
	// the sample is penalized.
	OrganicMatterMin float64 `koanf:"organic_matter_min" validate:"gt=0"`

	// FertilityWeight and TextureWeight blend the fertility composite
	// and texture desirability into the quality score. They should sum
	// to 1; when texture is unknown the fertility weight is
	// renormalized to carry the full score.
	FertilityWeight float64 `koanf:"fertility_weight" validate:"gt=0,lte=1"`
	TextureWeight   float64 `koanf:"texture_weight" validate:"gte=0,lte=1"`

	// FertilityHighMin and FertilityMediumMin are the composite score
	// cutoffs for the high and medium fertility levels.
	FertilityHighMin   float64 `koanf:"fertility_high_min" validate:"gte=0,lte=100"`
	FertilityMediumMin float64 `koanf:"fertility_medium_min" validate:"gte=0,lte=100"`
}

// DefaultThresholds returns the standard reference values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PHLow:              6.0,
		PHHigh:             7.5,
		NitrogenMin:        0.3,
		PhosphorusMin:      30,
		PotassiumMin:       200,
		OrganicMatterMin:   2.0,
		FertilityWeight:    0.6,
		TextureWeight:      0.4,
		FertilityHighMin:   75,
		FertilityMediumMin: 45,
	}
}

// Validate checks threshold consistency.
func (t Thresholds) Validate() error {
	if t.PHLow < 0 || t.PHHigh > 14 || t.PHLow > t.PHHigh {
		return fmt.Errorf("invalid pH range [%v, %v]", t.PHLow, t.PHHigh)
	}
	if t.NitrogenMin <= 0 || t.PhosphorusMin <= 0 || t.PotassiumMin <= 0 {
		return fmt.Errorf("nutrient reference minimums must be positive")
	}
	if t.OrganicMatterMin <= 0 {
		return fmt.Errorf("organic matter minimum must be positive")
	}
	if t.FertilityWeight <= 0 || t.FertilityWeight+t.TextureWeight <= 0 {
		return fmt.Errorf("quality score weights must be positive")
	}
	if t.FertilityMediumMin > t.FertilityHighMin {
		return fmt.Errorf("fertility level cutoffs out of order: medium %v > high %v",
			t.FertilityMediumMin, t.FertilityHighMin)
	}
	return nil
}

// Classifier turns raw soil samples into classifications. It is
// stateless and safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Thresholds returns the classifier's threshold set.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify produces the full classification for a sample. It never
// fails: absent measurements shrink the factor set and out-of-range
// values are clamped.
func (c *Classifier) Classify(sample SoilSample) SoilClassification {
	t := c.thresholds

	texture := ClassifyTexture(sample.Clay, sample.Sand, sample.Silt)
	fertility, hasFertility := c.fertilityScore(sample)

	quality := c.qualityScore(fertility, hasFertility, texture)

	level := FertilityLow
	switch {
	case !hasFertility:
		// No nutrient or pH data at all: grade by the midpoint
		// convention rather than guessing low.
		level = FertilityMedium
	case fertility >= t.FertilityHighMin:
		level = FertilityHigh
	case fertility >= t.FertilityMediumMin:
		level = FertilityMedium
	}

	return SoilClassification{
		TextureClass:    texture,
		FertilityLevel:  level,
		QualityScore:    quality,
		Fertility:       fertility,
		Recommendations: diagnose(sample, t),
	}
}

// fertilityScore combines pH, N, P, K, and organic matter sub-scores
// into a 0-100 composite over whatever is present. The bool is false
// when no fertility measurement is present.
func (c *Classifier) fertilityScore(sample SoilSample) (float64, bool) {
	t := c.thresholds

	factors := make([]Factor, 0, 5)

	if ph, ok := clamped(sample.PH, 0, 14); ok {
		factors = append(factors, Factor{Name: "ph", Score: TentScore(ph, t.PHLow, t.PHHigh), Present: true})
	}
	if n, ok := nonNegative(sample.Nitrogen); ok {
		factors = append(factors, Factor{Name: "nitrogen", Score: RatioScore(n, t.NitrogenMin), Present: true})
	}
	if p, ok := nonNegative(sample.Phosphorus); ok {
		factors = append(factors, Factor{Name: "phosphorus", Score: RatioScore(p, t.PhosphorusMin), Present: true})
	}
	if k, ok := nonNegative(sample.Potassium); ok {
		factors = append(factors, Factor{Name: "potassium", Score: RatioScore(k, t.PotassiumMin), Present: true})
	}
	if om, ok := clamped(sample.OrganicMatter, 0, 100); ok {
		factors = append(factors, Factor{Name: "organic_matter", Score: RatioScore(om, t.OrganicMatterMin), Present: true})
	}

	mean, present := MeanPresent(factors)
	return mean, present > 0
}

// qualityScore blends the fertility composite with texture
// desirability. When texture is unknown the fertility composite
// carries the full weight; when no fertility data is present the
// texture desirability alone carries it. With neither, the score is 0.
func (c *Classifier) qualityScore(fertility float64, hasFertility bool, texture TextureClass) float64 {
	t := c.thresholds
	desirability, hasTexture := texture.Desirability()

	switch {
	case hasFertility && hasTexture:
		total := t.FertilityWeight + t.TextureWeight
		return (fertility*t.FertilityWeight + desirability*t.TextureWeight) / total
	case hasFertility:
		return fertility
	case hasTexture:
		return desirability
	default:
		return 0
	}
}
