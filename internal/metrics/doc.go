// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

/*
Package metrics provides Prometheus metrics collection and export.

Metrics are registered with the default registry via promauto and
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP metrics:
  - api_requests_total: total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

Recommendation engine metrics:
  - engine_recommendations_total: full recommendation computations (counter)
  - engine_recommendation_duration_seconds: computation latency (histogram)
  - engine_crops_scored_total: crop profiles scored (counter)
  - engine_crops_excluded_total: crops skipped for lack of data (counter)
  - engine_validation_failures_total: rejected requests (counter)

Soil classification metrics:
  - soil_analyses_total: standalone soil analyses (counter)
  - soil_texture_classifications_total: classifications by class (counter)
    Labels: class

# Usage Example

Recording HTTP metrics from middleware:

	start := time.Now()
	next(wrapped, r)
	metrics.RecordAPIRequest(r.Method, r.URL.Path,
	    strconv.Itoa(wrapped.statusCode), time.Since(start))
*/
package metrics
