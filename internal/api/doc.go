// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package api provides the HTTP surface: Chi routing, request
// decoding and validation, engine invocation, and response encoding.
//
// Routes:
//
//	POST /api/v1/recommendations  ranked crop recommendations
//	POST /api/v1/soil/analyze     standalone soil classification
//	GET  /api/v1/crops            crop catalog listing
//	GET  /api/v1/crops/{name}     single crop profile
//	GET  /api/v1/health           liveness and status
//	GET  /metrics                 Prometheus metrics
package api
