// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/engine"
	"github.com/agrilens/agrilens/internal/logging"
	"github.com/agrilens/agrilens/internal/metrics"
	"github.com/agrilens/agrilens/internal/models"
)

// Handler serves the API endpoints.
type Handler struct {
	engine  *engine.Engine
	catalog *catalog.Catalog
	version string
	started time.Time
}

// NewHandler creates a handler over the engine and catalog.
func NewHandler(eng *engine.Engine, cat *catalog.Catalog, version string) *Handler {
	return &Handler{
		engine:  eng,
		catalog: cat,
		version: version,
		started: time.Now(),
	}
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result, err := h.engine.Recommend(r.Context(), engine.Request{
		Soil:         toSoilSample(req.SoilData),
		Weather:      toWeatherSnapshot(req.WeatherData),
		Area:         req.FarmSize,
		Budget:       req.Budget,
		MarketByCrop: toMarketQuotes(req.MarketData),
		Limit:        req.Limit,
	})
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"failed to compute recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("ranked", len(result.Recommendations)).
		Str("location", sanitizeLogValue(req.Location)).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, toRecommendationResponse(result, req.Location))
}

// SoilAnalyze handles POST /api/v1/soil/analyze: classification only,
// no crop scoring.
func (h *Handler) SoilAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.SoilAnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	classifier := h.engine.Classifier()
	sample := toSoilSample(req.SoilData)
	classification := classifier.Classify(sample)
	assessment := classifier.Assess(sample, classification)

	metrics.RecordSoilAnalysis(classification.TextureClass.String())

	respondJSON(w, http.StatusOK, models.SoilAnalyzeResponse{
		SoilQualityScore: classification.QualityScore,
		Analysis:         toSoilAnalysis(classification, assessment),
	})
}

// Crops handles GET /api/v1/crops.
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	profiles := h.catalog.All()
	crops := make([]models.CropProfileResponse, len(profiles))
	for i, p := range profiles {
		crops[i] = toCropProfileResponse(p)
	}

	respondJSON(w, http.StatusOK, models.CropListResponse{
		Crops: crops,
		Count: len(crops),
	})
}

// CropByName handles GET /api/v1/crops/{name}.
func (h *Handler) CropByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	profile, err := h.catalog.ByName(name)
	if err != nil {
		if errors.Is(err, catalog.ErrCropNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND",
				"unknown crop: "+sanitizeLogValue(name), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"failed to look up crop", err)
		return
	}

	respondJSON(w, http.StatusOK, toCropProfileResponse(profile))
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now(),
	})
}

// HealthLive handles GET /api/v1/health/live: minimal liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
	})
}
