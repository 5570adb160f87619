// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

import (
	"math"
	"strings"
	"testing"
)

func TestTentScore(t *testing.T) {
	tests := []struct {
		name              string
		value, low, high  float64
		want              float64
	}{
		{"inside range", 6.5, 6.0, 7.5, 100},
		{"at low bound", 6.0, 6.0, 7.5, 100},
		{"at high bound", 7.5, 6.0, 7.5, 100},
		{"half margin below", 5.25, 6.0, 7.5, 50},
		{"half margin above", 8.25, 6.0, 7.5, 50},
		{"full margin below", 4.5, 6.0, 7.5, 0},
		{"beyond margin", 2.0, 6.0, 7.5, 0},
		{"inverted bounds", 6.5, 7.5, 6.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TentScore(tt.value, tt.low, tt.high)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TentScore(%v, %v, %v) = %v, want %v",
					tt.value, tt.low, tt.high, got, tt.want)
			}
		})
	}
}

func TestTentScoreMonotonicOutsideRange(t *testing.T) {
	// Moving further below the low bound must never increase the score.
	prev := 100.0
	for v := 6.0; v >= 3.0; v -= 0.1 {
		score := TentScore(v, 6.0, 7.5)
		if score > prev {
			t.Fatalf("score increased from %v to %v at value %v", prev, score, v)
		}
		prev = score
	}
}

func TestRatioScore(t *testing.T) {
	tests := []struct {
		value, reference, want float64
	}{
		{0.3, 0.3, 100},
		{0.6, 0.3, 100},
		{0.15, 0.3, 50},
		{0, 0.3, 0},
		{-1, 0.3, 0},
		{5, 0, 100},
	}
	for _, tt := range tests {
		got := RatioScore(tt.value, tt.reference)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RatioScore(%v, %v) = %v, want %v", tt.value, tt.reference, got, tt.want)
		}
	}
}

func TestMeanPresent(t *testing.T) {
	factors := []Factor{
		{Name: "a", Score: 100, Present: true},
		{Name: "b", Score: 50, Present: true},
		{Name: "c", Score: 0, Present: false},
	}
	mean, present := MeanPresent(factors)
	if present != 2 {
		t.Errorf("present = %d, want 2", present)
	}
	if mean != 75 {
		t.Errorf("mean = %v, want 75", mean)
	}

	mean, present = MeanPresent(nil)
	if present != 0 || mean != 0 {
		t.Errorf("empty input: got (%v, %d), want (0, 0)", mean, present)
	}
}

func TestClassifyFullSample(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	sample := SoilSample{
		PH:            Float(6.5),
		Nitrogen:      Float(0.4),
		Phosphorus:    Float(40),
		Potassium:     Float(250),
		OrganicMatter: Float(4.5),
		Clay:          Float(18),
		Sand:          Float(42),
		Silt:          Float(40),
	}

	got := c.Classify(sample)

	if got.TextureClass != TextureLoam {
		t.Errorf("texture = %q, want %q", got.TextureClass, TextureLoam)
	}
	// Everything at or above reference: fertility composite is 100.
	if math.Abs(got.Fertility-100) > 1e-9 {
		t.Errorf("fertility = %v, want 100", got.Fertility)
	}
	if got.FertilityLevel != FertilityHigh {
		t.Errorf("fertility level = %q, want %q", got.FertilityLevel, FertilityHigh)
	}
	// 0.6*100 + 0.4*100 (loam desirability is 100).
	if math.Abs(got.QualityScore-100) > 1e-9 {
		t.Errorf("quality = %v, want 100", got.QualityScore)
	}
	if len(got.Recommendations) != 0 {
		t.Errorf("unexpected diagnostics: %v", got.Recommendations)
	}
}

func TestClassifySparseSample(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	// Only pH present: fertility composite is the pH sub-score alone
	// and texture is unknown, so quality equals fertility.
	got := c.Classify(SoilSample{PH: Float(6.5)})

	if got.TextureClass != TextureUnknown {
		t.Errorf("texture = %q, want unknown", got.TextureClass)
	}
	if math.Abs(got.Fertility-100) > 1e-9 {
		t.Errorf("fertility = %v, want 100", got.Fertility)
	}
	if math.Abs(got.QualityScore-got.Fertility) > 1e-9 {
		t.Errorf("quality %v should equal fertility %v when texture unknown",
			got.QualityScore, got.Fertility)
	}
}

func TestClassifyEmptySample(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	got := c.Classify(SoilSample{})

	if got.TextureClass != TextureUnknown {
		t.Errorf("texture = %q, want unknown", got.TextureClass)
	}
	if got.FertilityLevel != FertilityMedium {
		t.Errorf("fertility level = %q, want medium for absent data", got.FertilityLevel)
	}
	if got.QualityScore != 0 {
		t.Errorf("quality = %v, want 0", got.QualityScore)
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	// pH 20 clamps to 14: far outside the optimal band but must not
	// panic or produce a score outside 0-100.
	got := c.Classify(SoilSample{PH: Float(20)})
	if got.Fertility < 0 || got.Fertility > 100 {
		t.Errorf("fertility %v out of bounds", got.Fertility)
	}

	got = c.Classify(SoilSample{Nitrogen: Float(-5)})
	if got.Fertility != 0 {
		t.Errorf("negative nitrogen should floor at 0, got fertility %v", got.Fertility)
	}
}

func TestClassifyFertilityLevels(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	tests := []struct {
		name   string
		sample SoilSample
		want   FertilityLevel
	}{
		{"all adequate", SoilSample{Nitrogen: Float(0.5), Phosphorus: Float(50), Potassium: Float(300)}, FertilityHigh},
		{"all depleted", SoilSample{Nitrogen: Float(0.01), Phosphorus: Float(1), Potassium: Float(10)}, FertilityLow},
		{"mixed", SoilSample{Nitrogen: Float(0.3), Phosphorus: Float(3)}, FertilityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.sample); got.FertilityLevel != tt.want {
				t.Errorf("fertility level = %q (composite %v), want %q",
					got.FertilityLevel, got.Fertility, tt.want)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name     string
		sample   SoilSample
		contains []string
		count    int
	}{
		{
			name:     "acidic low nitrogen",
			sample:   SoilSample{PH: Float(5.0), Nitrogen: Float(0.1)},
			contains: []string{"acidic", "Nitrogen"},
			count:    2,
		},
		{
			name:     "alkaline",
			sample:   SoilSample{PH: Float(8.5)},
			contains: []string{"alkaline"},
			count:    1,
		},
		{
			name:     "very low organic matter",
			sample:   SoilSample{OrganicMatter: Float(1.0)},
			contains: []string{"very low"},
			count:    1,
		},
		{
			name:     "waterlogged clay",
			sample:   SoilSample{Moisture: Float(0.55), Clay: Float(55)},
			contains: []string{"drainage", "clay"},
			count:    2,
		},
		{
			name:   "healthy sample",
			sample: SoilSample{PH: Float(6.8), Nitrogen: Float(0.5), OrganicMatter: Float(4)},
			count:  0,
		},
		{
			name:   "empty sample fires nothing",
			sample: SoilSample{},
			count:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagnose(tt.sample, thresholds)
			if len(got) != tt.count {
				t.Fatalf("got %d messages %v, want %d", len(got), got, tt.count)
			}
			joined := strings.Join(got, " ")
			for _, want := range tt.contains {
				if !strings.Contains(joined, want) {
					t.Errorf("messages %v missing %q", got, want)
				}
			}
		})
	}
}

func TestDiagnosticsOrderIsStable(t *testing.T) {
	sample := SoilSample{
		PH:            Float(4.5),
		Nitrogen:      Float(0.05),
		Phosphorus:    Float(5),
		Potassium:     Float(50),
		OrganicMatter: Float(0.5),
	}
	first := diagnose(sample, DefaultThresholds())
	for i := 0; i < 10; i++ {
		again := diagnose(sample, DefaultThresholds())
		if len(again) != len(first) {
			t.Fatalf("message count changed between runs")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("message order changed at index %d", j)
			}
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	valid := DefaultThresholds()
	if err := valid.Validate(); err != nil {
		t.Errorf("default thresholds should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Thresholds)
	}{
		{"inverted ph range", func(th *Thresholds) { th.PHLow, th.PHHigh = 7.5, 6.0 }},
		{"zero nitrogen reference", func(th *Thresholds) { th.NitrogenMin = 0 }},
		{"zero organic matter minimum", func(th *Thresholds) { th.OrganicMatterMin = 0 }},
		{"zero fertility weight", func(th *Thresholds) { th.FertilityWeight = 0 }},
		{"inverted level cutoffs", func(th *Thresholds) { th.FertilityMediumMin = 90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultThresholds()
			tt.mutate(&th)
			if err := th.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
