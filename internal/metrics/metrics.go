// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation engine metrics
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_recommendations_total",
			Help: "Total number of recommendation computations",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_recommendation_duration_seconds",
			Help:    "Duration of one full recommendation computation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	CropsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_crops_scored_total",
			Help: "Total number of crop profiles scored",
		},
	)

	CropsExcluded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_crops_excluded_total",
			Help: "Crops excluded from ranking because no scoring factor was present",
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_validation_failures_total",
			Help: "Requests rejected before scoring began",
		},
	)

	// Soil classification metrics
	SoilAnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "soil_analyses_total",
			Help: "Total number of standalone soil analyses",
		},
	)

	SoilTextureClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soil_texture_classifications_total",
			Help: "Soil texture classifications by resulting class",
		},
		[]string{"class"},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active request gauge. Call with true
// on entry and false on exit.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one full engine computation.
func RecordRecommendation(duration time.Duration, scored, excluded int) {
	RecommendationsTotal.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	CropsScored.Add(float64(scored))
	CropsExcluded.Add(float64(excluded))
}

// RecordSoilAnalysis records one standalone soil analysis.
func RecordSoilAnalysis(textureClass string) {
	SoilAnalysesTotal.Inc()
	SoilTextureClassified.WithLabelValues(textureClass).Inc()
}
