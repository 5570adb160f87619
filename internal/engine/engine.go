// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilens/agrilens/internal/agronomy"
	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/logging"
	"github.com/agrilens/agrilens/internal/metrics"
)

// Engine runs the full recommendation pipeline: classify the soil
// once, score every crop in the catalog concurrently, project
// financials, and rank deterministically.
//
// The engine holds no mutable request state; concurrent requests are
// fully independent.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *agronomy.Classifier
	scorer     *Scorer
	estimator  *Estimator
	cfg        Config
	logger     zerolog.Logger

	requestsServed atomic.Int64
}

// New creates an engine over the given catalog.
func New(cat *catalog.Catalog, cfg Config) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return &Engine{
		catalog:    cat,
		classifier: agronomy.NewClassifier(cfg.Thresholds),
		scorer:     NewScorer(cfg),
		estimator:  NewEstimator(),
		cfg:        cfg,
		logger:     logging.WithComponent("engine"),
	}, nil
}

// Classifier exposes the engine's soil classifier for standalone
// analysis endpoints, so both paths share one threshold set.
func (e *Engine) Classifier() *agronomy.Classifier {
	return e.classifier
}

// RequestsServed returns the number of completed recommendations.
func (e *Engine) RequestsServed() int64 {
	return e.requestsServed.Load()
}

// Recommend computes the ranked crop list for one request.
//
// Returns *ValidationError when the request is rejected before
// scoring. All other degradation (sparse samples, unknown texture,
// zero revenue) is absorbed internally: however sparse the input, the
// result is a best-effort ranked list.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	if req.Area <= 0 {
		metrics.ValidationFailures.Inc()
		return nil, newValidationError("farm_size", "must be a positive number")
	}
	if req.Budget < 0 {
		metrics.ValidationFailures.Inc()
		return nil, newValidationError("budget", "must not be negative")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	// Classify once; the classification is shared by every crop score.
	classification := e.classifier.Classify(req.Soil)
	assessment := e.classifier.Assess(req.Soil, classification)

	profiles := e.catalog.All()
	scored, excluded := e.scoreAll(profiles, req, classification)

	// Deterministic total order: score desc, confidence desc, name
	// asc. Sorting happens after all results are collected so the
	// concurrent scoring above cannot influence output order.
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i].Suitability, scored[j].Suitability
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return strings.Compare(a.CropName, b.CropName) < 0
	})

	limit := req.Limit
	if limit <= 0 {
		limit = e.cfg.TopK
	}
	moreCount := 0
	if len(scored) > limit {
		moreCount = len(scored) - limit
		scored = scored[:limit]
	}

	e.requestsServed.Add(1)
	metrics.RecordRecommendation(time.Since(start), len(profiles)-excluded, excluded)

	e.logger.Debug().
		Int("crops", len(profiles)).
		Int("ranked", len(scored)).
		Int("excluded", excluded).
		Str("texture", classification.TextureClass.String()).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendation computed")

	return &Result{
		Classification:  classification,
		Assessment:      assessment,
		Recommendations: scored,
		MoreCount:       moreCount,
	}, nil
}

// scoreAll scores every profile concurrently. Each goroutine writes
// only its own slot, so no locking is needed; nil slots mark crops
// with no evaluable factor.
func (e *Engine) scoreAll(
	profiles []catalog.CropProfile,
	req Request,
	classification agronomy.SoilClassification,
) ([]Recommendation, int) {
	slots := make([]*Recommendation, len(profiles))

	var wg sync.WaitGroup
	for i := range profiles {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			profile := profiles[idx]

			suitability, ok := e.scorer.Score(profile, req.Soil, req.Weather, classification)
			if !ok {
				return
			}

			quote, hasQuote := req.MarketByCrop[profile.Name]
			var quotePtr *MarketQuote
			if hasQuote {
				quotePtr = &quote
			} else {
				quote = fallbackQuote(profile)
			}

			fin := e.estimator.Estimate(profile, suitability.Score, req.Area, quotePtr)

			slots[idx] = &Recommendation{
				Profile:       profile,
				Suitability:   suitability,
				Financials:    fin,
				Quote:         quote,
				ExceedsBudget: req.Budget > 0 && fin.Cost > req.Budget,
			}
		}(i)
	}
	wg.Wait()

	results := make([]Recommendation, 0, len(profiles))
	excluded := 0
	for _, slot := range slots {
		if slot == nil {
			excluded++
			continue
		}
		results = append(results, *slot)
	}
	return results, excluded
}

// fallbackQuote synthesizes a quote from the catalog planning price
// for crops without live market data.
func fallbackQuote(profile catalog.CropProfile) MarketQuote {
	return MarketQuote{
		CurrentPrice: profile.BaseMarketPrice,
		Unit:         profile.Unit,
		DemandLevel:  "medium",
		MarketTrend:  "stable",
	}
}
