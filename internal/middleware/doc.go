// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking,
gzip compression, and Prometheus metrics instrumentation. The API router
composes these with CORS and rate limiting into the full middleware stack
for HTTP request processing.

Key Components:

  - Request ID: UUID-based request tracking for distributed tracing
  - Compression: Gzip compression when the client accepts it
  - Prometheus Metrics: HTTP request/response instrumentation

Usage Example - Request ID:

	http.HandleFunc("/api/v1/recommendations",
	    middleware.RequestID(
	        middleware.PrometheusMetrics(
	            middleware.Compression(handler),
	        ),
	    ),
	)

	// Access request ID in a handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    _ = requestID
	}

The request ID middleware honors an X-Request-ID header supplied by an
upstream proxy and generates a UUID v4 otherwise. The ID is written to
the response header and propagated through the request context, where the
logging package picks it up for correlated structured logs.

Compression Details:

The compression middleware:
  - Supports gzip encoding (Accept-Encoding: gzip)
  - Pools gzip writers to reduce allocations
  - Automatically sets Content-Encoding header

Prometheus metrics middleware records request counts, durations, and
in-flight gauges labeled by method, endpoint, and status code. The
metrics package defines the underlying collectors.

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
