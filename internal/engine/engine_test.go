// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package engine

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/agrilens/agrilens/internal/agronomy"
	"github.com/agrilens/agrilens/internal/catalog"
)

// richRequest is the fully measured reference request used across
// engine tests.
func richRequest() Request {
	return Request{
		Soil: agronomy.SoilSample{
			PH:            agronomy.Float(6.5),
			Nitrogen:      agronomy.Float(0.2),
			Phosphorus:    agronomy.Float(20),
			Potassium:     agronomy.Float(150),
			Moisture:      agronomy.Float(0.3),
			OrganicMatter: agronomy.Float(4.2),
		},
		Weather: &agronomy.WeatherSnapshot{
			Temperature: agronomy.Float(25),
			Humidity:    agronomy.Float(60),
		},
		Area:   10.5,
		Budget: 50000,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(catalog.Default(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestRecommendRejectsNonPositiveArea(t *testing.T) {
	e := newTestEngine(t)

	for _, area := range []float64{0, -1, -10.5} {
		req := richRequest()
		req.Area = area

		_, err := e.Recommend(context.Background(), req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("area %v: expected ValidationError, got %v", area, err)
		}
	}
}

func TestRecommendRejectsNegativeBudget(t *testing.T) {
	e := newTestEngine(t)
	req := richRequest()
	req.Budget = -1

	_, err := e.Recommend(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestRecommendRanking(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(context.Background(), richRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected a non-empty ranked list")
	}

	for i := 1; i < len(result.Recommendations); i++ {
		a := result.Recommendations[i-1].Suitability
		b := result.Recommendations[i].Suitability
		switch {
		case a.Score > b.Score:
		case a.Score == b.Score && a.Confidence > b.Confidence:
		case a.Score == b.Score && a.Confidence == b.Confidence && a.CropName < b.CropName:
		default:
			t.Fatalf("ranking violated at %d: (%v, %v, %s) before (%v, %v, %s)",
				i, a.Score, a.Confidence, a.CropName, b.Score, b.Confidence, b.CropName)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	e := newTestEngine(t)
	req := richRequest()

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		again, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestRecommendScoreAndConfidenceBounds(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(context.Background(), richRequest())
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range result.Recommendations {
		if rec.Suitability.Score < 0 || rec.Suitability.Score > 100 {
			t.Errorf("%s: score %v out of bounds", rec.Profile.Name, rec.Suitability.Score)
		}
		if rec.Suitability.Confidence < 0.2 || rec.Suitability.Confidence > 1.0 {
			t.Errorf("%s: confidence %v out of bounds", rec.Profile.Name, rec.Suitability.Confidence)
		}
	}
}

func TestRecommendReferenceScenario(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(context.Background(), richRequest())
	if err != nil {
		t.Fatal(err)
	}

	// Every crop whose optimal pH band contains 6.5 must report an
	// optimal pH factor score; with temperature 25 in band too, crops
	// like wheat score the pH factor at 100. Verify through the top
	// entry's cost identity instead of internal factor scores: cost
	// is exactly base cost x area.
	top := result.Recommendations[0]
	wantCost := top.Profile.BaseCostPerArea * 10.5
	if math.Abs(top.Financials.Cost-wantCost) > 1e-9 {
		t.Errorf("top cost = %v, want %v", top.Financials.Cost, wantCost)
	}
}

func TestRecommendSparseSampleStillRanks(t *testing.T) {
	e := newTestEngine(t)

	req := Request{
		Soil: agronomy.SoilSample{PH: agronomy.Float(6.8)},
		Area: 2,
	}
	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("sparse sample must not fail: %v", err)
	}
	if len(result.Recommendations) != e.catalog.Len() {
		t.Errorf("ranked %d crops, want all %d", len(result.Recommendations), e.catalog.Len())
	}
	if result.Classification.TextureClass != agronomy.TextureUnknown {
		t.Errorf("texture = %q, want unknown", result.Classification.TextureClass)
	}
}

func TestRecommendNoFactorsExcludesAllCrops(t *testing.T) {
	e := newTestEngine(t)

	// Nutrients only: no pH, temperature, moisture, or texture data,
	// so no crop has an evaluable factor.
	req := Request{
		Soil: agronomy.SoilSample{Nitrogen: agronomy.Float(0.4)},
		Area: 5,
	}
	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected empty ranking, got %d entries", len(result.Recommendations))
	}
	if result.MoreCount != 0 {
		t.Errorf("more count = %d, want 0", result.MoreCount)
	}
}

func TestRecommendTruncationAndMoreCount(t *testing.T) {
	e := newTestEngine(t)

	req := richRequest()
	req.Limit = 3

	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("ranked %d, want 3", len(result.Recommendations))
	}
	if result.MoreCount != e.catalog.Len()-3 {
		t.Errorf("more count = %d, want %d", result.MoreCount, e.catalog.Len()-3)
	}
}

func TestRecommendBudgetFlagsNotFilters(t *testing.T) {
	e := newTestEngine(t)

	req := richRequest()
	req.Budget = 1 // every crop exceeds this

	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("budget must never filter results")
	}
	for _, rec := range result.Recommendations {
		if !rec.ExceedsBudget {
			t.Errorf("%s: cost %v should be flagged over budget %v",
				rec.Profile.Name, rec.Financials.Cost, req.Budget)
		}
	}

	// Without a budget the flag stays clear.
	req.Budget = 0
	result, err = e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range result.Recommendations {
		if rec.ExceedsBudget {
			t.Errorf("%s: flag set with no budget", rec.Profile.Name)
		}
	}
}

func TestRecommendMarketQuoteOverridesPrice(t *testing.T) {
	e := newTestEngine(t)

	req := richRequest()
	req.MarketByCrop = map[string]MarketQuote{
		"wheat": {CurrentPrice: 1000, Unit: "per_quintal", DemandLevel: "high", MarketTrend: "rising", PriceChangePercent: 4.2},
	}

	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	var wheat *Recommendation
	for i := range result.Recommendations {
		if result.Recommendations[i].Profile.Name == "wheat" {
			wheat = &result.Recommendations[i]
			break
		}
	}
	if wheat == nil {
		t.Fatal("wheat missing from ranking")
	}
	if wheat.Quote.CurrentPrice != 1000 || wheat.Quote.DemandLevel != "high" {
		t.Errorf("quote not echoed: %+v", wheat.Quote)
	}
	wantRevenue := wheat.Financials.Yield * 1000
	if math.Abs(wheat.Financials.Revenue-wantRevenue) > 1e-6 {
		t.Errorf("revenue = %v, want %v from the live quote", wheat.Financials.Revenue, wantRevenue)
	}
}

func TestRecommendFallbackQuote(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(context.Background(), richRequest())
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range result.Recommendations {
		if rec.Quote.CurrentPrice != rec.Profile.BaseMarketPrice {
			t.Errorf("%s: fallback quote price %v, want catalog price %v",
				rec.Profile.Name, rec.Quote.CurrentPrice, rec.Profile.BaseMarketPrice)
		}
		if rec.Quote.Unit != rec.Profile.Unit {
			t.Errorf("%s: fallback unit %q, want %q", rec.Profile.Name, rec.Quote.Unit, rec.Profile.Unit)
		}
	}
}

func TestRecommendCanceledContext(t *testing.T) {
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, richRequest())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRecommendWithSyntheticCatalog(t *testing.T) {
	// A crop tolerant of everything ties with itself; verify name
	// tie-breaking with identical profiles under different names.
	profile := testProfile()
	b, a := profile, profile
	a.Name = "amaranth"
	b.Name = "barley"

	cat, err := catalog.New([]catalog.CropProfile{b, a})
	if err != nil {
		t.Fatal(err)
	}
	e, err := New(cat, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	req := Request{
		Soil: agronomy.SoilSample{PH: agronomy.Float(6.5)},
		Area: 1,
	}
	result, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		names[i] = rec.Profile.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("equal scores must tie-break by name ascending, got %v", names)
	}
}

func TestRequestsServedCounter(t *testing.T) {
	e := newTestEngine(t)

	before := e.RequestsServed()
	if _, err := e.Recommend(context.Background(), richRequest()); err != nil {
		t.Fatal(err)
	}
	if e.RequestsServed() != before+1 {
		t.Errorf("requests served = %d, want %d", e.RequestsServed(), before+1)
	}
}
