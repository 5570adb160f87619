// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package models

// SoilData carries the measured soil attributes of a request. Every
// field is optional; a missing field excludes the corresponding
// scoring factor rather than counting as zero. Out-of-range values
// are clamped to their physical bounds before scoring, never
// rejected.
type SoilData struct {
	PH            *float64 `json:"ph,omitempty"`
	Nitrogen      *float64 `json:"nitrogen,omitempty"`
	Phosphorus    *float64 `json:"phosphorus,omitempty"`
	Potassium     *float64 `json:"potassium,omitempty"`
	Moisture      *float64 `json:"moisture,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Clay          *float64 `json:"clay,omitempty"`
	Sand          *float64 `json:"sand,omitempty"`
	Silt          *float64 `json:"silt,omitempty"`
	OrganicMatter *float64 `json:"organic_matter,omitempty"`
}

// WeatherData carries the optional weather snapshot. Like SoilData,
// out-of-range measurements are clamped, not rejected.
type WeatherData struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

// MarketData is a market quote, either supplied per crop in a request
// or echoed back in each recommendation.
type MarketData struct {
	CurrentPrice       float64 `json:"current_price"`
	Unit               string  `json:"unit"`
	DemandLevel        string  `json:"demand_level"`
	MarketTrend        string  `json:"market_trend"`
	PriceChangePercent float64 `json:"price_change_percent"`
}

// RecommendationRequest is the input to POST /api/v1/recommendations.
// Budget is advisory: recommendations whose estimated cost exceeds it
// carry exceeds_budget, and no crop is ever filtered out. A zero or
// omitted budget disables the flag.
type RecommendationRequest struct {
	SoilData    SoilData              `json:"soil_data"`
	WeatherData *WeatherData          `json:"weather_data,omitempty"`
	FarmSize    float64               `json:"farm_size" validate:"required,gt=0"`
	Budget      float64               `json:"budget" validate:"gte=0"`
	Location    string                `json:"location,omitempty" validate:"omitempty,max=200"`
	MarketData  map[string]MarketData `json:"market_data,omitempty"`
	Limit       int                   `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

// SoilAnalysis summarizes the classified soil. The first three fields
// are always present; the rest appear only when the measurements they
// derive from were supplied.
type SoilAnalysis struct {
	SoilType            string   `json:"soil_type"`
	FertilityLevel      string   `json:"fertility_level"`
	Recommendations     []string `json:"recommendations"`
	Drainage            string   `json:"drainage,omitempty"`
	Texture             string   `json:"texture,omitempty"`
	NutrientBalance     string   `json:"nutrient_balance,omitempty"`
	OrganicMatterStatus string   `json:"organic_matter_status,omitempty"`
	PHStatus            string   `json:"ph_status,omitempty"`
}

// GrowingRequirements echoes a crop's catalog optimums.
type GrowingRequirements struct {
	OptimalPH        [2]float64 `json:"optimal_ph"`
	OptimalTemp      [2]float64 `json:"optimal_temp"`
	WaterRequirement string     `json:"water_requirement"`
	SoilType         []string   `json:"soil_type"`
	Season           string     `json:"season"`
}

// CropRecommendation is one ranked entry of the response.
type CropRecommendation struct {
	Crop                string              `json:"crop"`
	SuitabilityScore    float64             `json:"suitability_score"`
	Confidence          float64             `json:"confidence"`
	EstimatedYield      float64             `json:"estimated_yield"`
	EstimatedCost       float64             `json:"estimated_cost"`
	EstimatedProfit     float64             `json:"estimated_profit"`
	ProfitMargin        float64             `json:"profit_margin"`
	Factors             []string            `json:"factors"`
	ExceedsBudget       bool                `json:"exceeds_budget"`
	GrowingRequirements GrowingRequirements `json:"growing_requirements"`
	MarketData          MarketData          `json:"market_data"`
}

// RecommendationResponse is the output of POST /api/v1/recommendations.
type RecommendationResponse struct {
	SoilQualityScore float64              `json:"soil_quality_score"`
	Analysis         SoilAnalysis         `json:"analysis"`
	Recommendations  []CropRecommendation `json:"recommendations"`
	MoreCount        int                  `json:"more_count"`
	Location         string               `json:"location,omitempty"`
}

// SoilAnalyzeRequest is the input to POST /api/v1/soil/analyze.
type SoilAnalyzeRequest struct {
	SoilData SoilData `json:"soil_data"`
}

// SoilAnalyzeResponse is the output of POST /api/v1/soil/analyze.
type SoilAnalyzeResponse struct {
	SoilQualityScore float64      `json:"soil_quality_score"`
	Analysis         SoilAnalysis `json:"analysis"`
}

// CropProfileResponse describes one catalog entry for the crop
// listing endpoints.
type CropProfileResponse struct {
	Crop                string              `json:"crop"`
	GrowingRequirements GrowingRequirements `json:"growing_requirements"`
	BaseYieldPerArea    float64             `json:"base_yield_per_area"`
	BaseCostPerArea     float64             `json:"base_cost_per_area"`
	MarketData          MarketData          `json:"market_data"`
}

// CropListResponse is the output of GET /api/v1/crops.
type CropListResponse struct {
	Crops []CropProfileResponse `json:"crops"`
	Count int                   `json:"count"`
}
