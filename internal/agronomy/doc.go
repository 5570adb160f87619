// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package agronomy implements soil classification: USDA texture
// classification from clay/sand/silt fractions, fertility scoring,
// a composite 0-100 soil quality score, and diagnostic
// recommendations.
//
// All inputs are optional. Absent measurements reduce the factor set;
// they are never treated as zero. Scoring over the remaining factors
// renormalizes weights so sparse samples still produce meaningful
// scores. Out-of-range measurements are clamped to their physical
// bounds before scoring, never rejected.
package agronomy
