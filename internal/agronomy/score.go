// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package agronomy

// Factor is one scored criterion. Present is false when the underlying
// measurement was absent; absent factors are excluded from aggregation
// rather than scored as zero.
type Factor struct {
	Name    string
	Score   float64
	Present bool
}

// MeanPresent returns the arithmetic mean of the present factor scores
// and the count of present factors. Weights renormalize over whatever
// is present, so a sample with two of four measurements is scored on
// those two alone. Returns (0, 0) when no factor is present; callers
// must treat that as undefined, not as a zero score.
func MeanPresent(factors []Factor) (mean float64, present int) {
	var sum float64
	for _, f := range factors {
		if !f.Present {
			continue
		}
		sum += f.Score
		present++
	}
	if present == 0 {
		return 0, 0
	}
	return sum / float64(present), present
}

// TentScore scores a measurement against an optimal range [low, high].
// Values inside the range score 100. Outside, the score decays linearly
// to 0 at a distance of (high-low) beyond either bound and floors at 0
// past that.
func TentScore(value, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if value >= low && value <= high {
		return 100
	}
	margin := high - low
	if margin <= 0 {
		// Degenerate point range: any miss scores 0.
		return 0
	}
	var dist float64
	if value < low {
		dist = low - value
	} else {
		dist = value - high
	}
	if dist >= margin {
		return 0
	}
	return 100 * (1 - dist/margin)
}

// RatioScore scores a measurement against a reference minimum: 100 at
// or above the reference, decaying linearly toward 0 as the value
// approaches zero.
func RatioScore(value, reference float64) float64 {
	if reference <= 0 {
		return 100
	}
	if value >= reference {
		return 100
	}
	if value <= 0 {
		return 0
	}
	return 100 * value / reference
}
