// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package api

import (
	"github.com/agrilens/agrilens/internal/agronomy"
	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/engine"
	"github.com/agrilens/agrilens/internal/models"
)

// toSoilSample maps the request DTO onto the engine's sample type.
func toSoilSample(d models.SoilData) agronomy.SoilSample {
	return agronomy.SoilSample{
		PH:            d.PH,
		Nitrogen:      d.Nitrogen,
		Phosphorus:    d.Phosphorus,
		Potassium:     d.Potassium,
		Moisture:      d.Moisture,
		Temperature:   d.Temperature,
		Clay:          d.Clay,
		Sand:          d.Sand,
		Silt:          d.Silt,
		OrganicMatter: d.OrganicMatter,
	}
}

// toWeatherSnapshot maps the optional weather DTO.
func toWeatherSnapshot(d *models.WeatherData) *agronomy.WeatherSnapshot {
	if d == nil {
		return nil
	}
	return &agronomy.WeatherSnapshot{
		Temperature: d.Temperature,
		Humidity:    d.Humidity,
	}
}

// toMarketQuotes maps the optional per-crop quotes.
func toMarketQuotes(quotes map[string]models.MarketData) map[string]engine.MarketQuote {
	if len(quotes) == 0 {
		return nil
	}
	out := make(map[string]engine.MarketQuote, len(quotes))
	for crop, q := range quotes {
		out[crop] = engine.MarketQuote{
			CurrentPrice:       q.CurrentPrice,
			Unit:               q.Unit,
			DemandLevel:        q.DemandLevel,
			MarketTrend:        q.MarketTrend,
			PriceChangePercent: q.PriceChangePercent,
		}
	}
	return out
}

// toSoilAnalysis assembles the analysis block from the classification
// and its supplementary assessments.
func toSoilAnalysis(class agronomy.SoilClassification, assess agronomy.Assessment) models.SoilAnalysis {
	recommendations := class.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return models.SoilAnalysis{
		SoilType:            class.TextureClass.String(),
		FertilityLevel:      class.FertilityLevel.String(),
		Recommendations:     recommendations,
		Drainage:            assess.Drainage,
		Texture:             assess.Texture,
		NutrientBalance:     assess.NutrientBalance,
		OrganicMatterStatus: assess.OrganicMatterStatus,
		PHStatus:            assess.PHStatus,
	}
}

// toGrowingRequirements echoes a profile's catalog optimums.
func toGrowingRequirements(p catalog.CropProfile) models.GrowingRequirements {
	soilTypes := make([]string, len(p.SoilTypes))
	for i, t := range p.SoilTypes {
		soilTypes[i] = t.String()
	}
	return models.GrowingRequirements{
		OptimalPH:        [2]float64{p.OptimalPH.Low, p.OptimalPH.High},
		OptimalTemp:      [2]float64{p.OptimalTemp.Low, p.OptimalTemp.High},
		WaterRequirement: p.WaterRequirement.String(),
		SoilType:         soilTypes,
		Season:           p.Season.String(),
	}
}

// toMarketData echoes a quote back out.
func toMarketData(q engine.MarketQuote) models.MarketData {
	return models.MarketData{
		CurrentPrice:       q.CurrentPrice,
		Unit:               q.Unit,
		DemandLevel:        q.DemandLevel,
		MarketTrend:        q.MarketTrend,
		PriceChangePercent: q.PriceChangePercent,
	}
}

// toRecommendationResponse assembles the full response DTO.
func toRecommendationResponse(result *engine.Result, location string) models.RecommendationResponse {
	recs := make([]models.CropRecommendation, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		recs[i] = models.CropRecommendation{
			Crop:                rec.Profile.Name,
			SuitabilityScore:    rec.Suitability.Score,
			Confidence:          rec.Suitability.Confidence,
			EstimatedYield:      rec.Financials.Yield,
			EstimatedCost:       rec.Financials.Cost,
			EstimatedProfit:     rec.Financials.Profit,
			ProfitMargin:        rec.Financials.Margin,
			Factors:             rec.Suitability.Factors,
			ExceedsBudget:       rec.ExceedsBudget,
			GrowingRequirements: toGrowingRequirements(rec.Profile),
			MarketData:          toMarketData(rec.Quote),
		}
	}

	return models.RecommendationResponse{
		SoilQualityScore: result.Classification.QualityScore,
		Analysis:         toSoilAnalysis(result.Classification, result.Assessment),
		Recommendations:  recs,
		MoreCount:        result.MoreCount,
		Location:         location,
	}
}

// toCropProfileResponse describes one catalog entry.
func toCropProfileResponse(p catalog.CropProfile) models.CropProfileResponse {
	return models.CropProfileResponse{
		Crop:                p.Name,
		GrowingRequirements: toGrowingRequirements(p),
		BaseYieldPerArea:    p.BaseYieldPerArea,
		BaseCostPerArea:     p.BaseCostPerArea,
		MarketData: models.MarketData{
			CurrentPrice: p.BaseMarketPrice,
			Unit:         p.Unit,
			DemandLevel:  "medium",
			MarketTrend:  "stable",
		},
	}
}
