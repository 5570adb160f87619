// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import (
	"fmt"
	"sort"

	"github.com/agrilens/agrilens/internal/agronomy"
	"github.com/agrilens/agrilens/internal/catalog"
)

// totalFactors is the number of criteria a fully measured request can
// evaluate per crop: pH, temperature, moisture, soil type.
const totalFactors = 4

// Scorer computes per-crop suitability. Stateless; safe for
// concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// scoredFactor pairs a factor's score with its explanation so factors
// can be ranked by contribution.
type scoredFactor struct {
	score   float64
	message string
}

// Score evaluates one crop against a (soil, weather) pair. The soil
// classification is computed once by the caller and shared across
// crops. Returns ok=false when no factor could be evaluated; such
// crops are excluded from ranking rather than scored as zero.
func (s *Scorer) Score(
	profile catalog.CropProfile,
	soil agronomy.SoilSample,
	weather *agronomy.WeatherSnapshot,
	class agronomy.SoilClassification,
) (SuitabilityResult, bool) {
	factors := make([]scoredFactor, 0, totalFactors)

	if f, ok := s.phFactor(profile, soil); ok {
		factors = append(factors, f)
	}
	if f, ok := s.temperatureFactor(profile, soil, weather); ok {
		factors = append(factors, f)
	}
	if f, ok := s.moistureFactor(profile, soil); ok {
		factors = append(factors, f)
	}
	if f, ok := s.soilTypeFactor(profile, class); ok {
		factors = append(factors, f)
	}

	if len(factors) == 0 {
		return SuitabilityResult{}, false
	}

	var sum float64
	for _, f := range factors {
		sum += f.score
	}
	score := sum / float64(len(factors))

	confidence := float64(len(factors)) / totalFactors
	if confidence < s.cfg.ConfidenceFloor {
		confidence = s.cfg.ConfidenceFloor
	}

	// Rank explanations by contribution, highest first. Stable sort
	// keeps the canonical factor order for ties so output is
	// deterministic.
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].score > factors[j].score
	})
	messages := make([]string, len(factors))
	for i, f := range factors {
		messages[i] = f.message
	}

	return SuitabilityResult{
		CropName:   profile.Name,
		Score:      score,
		Confidence: confidence,
		Factors:    messages,
	}, true
}

func (s *Scorer) phFactor(profile catalog.CropProfile, soil agronomy.SoilSample) (scoredFactor, bool) {
	if soil.PH == nil {
		return scoredFactor{}, false
	}
	ph := agronomy.Clamp(*soil.PH, 0, 14)
	score := agronomy.TentScore(ph, profile.OptimalPH.Low, profile.OptimalPH.High)
	return scoredFactor{
		score:   score,
		message: fmt.Sprintf("%s soil pH %.1f (optimal %.1f-%.1f)", grade(score), ph, profile.OptimalPH.Low, profile.OptimalPH.High),
	}, true
}

// temperatureFactor prefers the weather reading and falls back to the
// soil temperature. Absent both, the factor is excluded.
func (s *Scorer) temperatureFactor(profile catalog.CropProfile, soil agronomy.SoilSample, weather *agronomy.WeatherSnapshot) (scoredFactor, bool) {
	var temp *float64
	if weather != nil && weather.Temperature != nil {
		temp = weather.Temperature
	} else if soil.Temperature != nil {
		temp = soil.Temperature
	}
	if temp == nil {
		return scoredFactor{}, false
	}
	t := agronomy.Clamp(*temp, -50, 60)
	score := agronomy.TentScore(t, profile.OptimalTemp.Low, profile.OptimalTemp.High)
	return scoredFactor{
		score:   score,
		message: fmt.Sprintf("%s temperature %.0f°C (optimal %.0f-%.0f°C)", grade(score), t, profile.OptimalTemp.Low, profile.OptimalTemp.High),
	}, true
}

// moistureFactor matches the measured moisture category against the
// crop's water requirement: exact match 100, adjacent category 50,
// opposite 0.
func (s *Scorer) moistureFactor(profile catalog.CropProfile, soil agronomy.SoilSample) (scoredFactor, bool) {
	if soil.Moisture == nil {
		return scoredFactor{}, false
	}
	moisture := agronomy.Clamp(*soil.Moisture, 0, 1)
	category := s.moistureCategory(moisture)

	distance := category.Rank() - profile.WaterRequirement.Rank()
	if distance < 0 {
		distance = -distance
	}
	var score float64
	switch distance {
	case 0:
		score = 100
	case 1:
		score = 50
	default:
		score = 0
	}

	return scoredFactor{
		score: score,
		message: fmt.Sprintf("%s moisture: %s available vs %s requirement",
			grade(score), category, profile.WaterRequirement),
	}, true
}

// moistureCategory buckets a volumetric fraction into the water
// availability categories.
func (s *Scorer) moistureCategory(moisture float64) catalog.WaterRequirement {
	switch {
	case moisture < s.cfg.MoistureLowMax:
		return catalog.WaterLow
	case moisture <= s.cfg.MoistureMediumMax:
		return catalog.WaterMedium
	default:
		return catalog.WaterHigh
	}
}

// soilTypeFactor scores texture compatibility. Unknown texture
// excludes the factor entirely rather than penalizing it.
func (s *Scorer) soilTypeFactor(profile catalog.CropProfile, class agronomy.SoilClassification) (scoredFactor, bool) {
	if !class.TextureClass.Known() {
		return scoredFactor{}, false
	}
	if profile.Tolerates(class.TextureClass) {
		return scoredFactor{
			score:   100,
			message: fmt.Sprintf("Suitable soil type (%s)", class.TextureClass),
		}, true
	}
	return scoredFactor{
		score:   0,
		message: fmt.Sprintf("Unsuitable soil type (%s)", class.TextureClass),
	}, true
}

// grade words a factor score for display.
func grade(score float64) string {
	switch {
	case score >= 100:
		return "Optimal"
	case score >= 50:
		return "Acceptable"
	default:
		return "Suboptimal"
	}
}
