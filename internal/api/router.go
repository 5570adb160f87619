// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrilens/agrilens/internal/middleware"
)

// Router wires handlers and middleware into the HTTP mux.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints: permissive rate limiting so monitors can poll.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.middleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
	})

	// Core API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Post("/recommendations", router.handler.Recommendations)
		r.Post("/soil/analyze", router.handler.SoilAnalyze)
		r.Get("/crops", router.handler.Crops)
		r.Get("/crops/{name}", router.handler.CropByName)
	})

	// Prometheus metrics endpoint.
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
