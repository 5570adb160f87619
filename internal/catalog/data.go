// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

package catalog

import (
	"github.com/agrilens/agrilens/internal/agronomy"
)

// Broad soil families expanded to the USDA classes they cover. The
// planning tables group tolerances at family granularity.
var (
	loamySoils = []agronomy.TextureClass{
		agronomy.TextureLoam, agronomy.TextureSiltLoam,
		agronomy.TextureSandyLoam, agronomy.TextureClayLoam,
	}
	claySoils = []agronomy.TextureClass{
		agronomy.TextureClay, agronomy.TextureClayLoam,
		agronomy.TextureSiltyClay, agronomy.TextureSiltyClayLoam,
	}
	sandySoils = []agronomy.TextureClass{
		agronomy.TextureSand, agronomy.TextureLoamySand,
		agronomy.TextureSandyLoam, agronomy.TextureSandyClayLoam,
	}
	siltySoils = []agronomy.TextureClass{
		agronomy.TextureSilt, agronomy.TextureSiltLoam,
		agronomy.TextureSiltyClayLoam,
	}
)

// families merges soil family lists, dropping duplicate classes while
// preserving order.
func families(lists ...[]agronomy.TextureClass) []agronomy.TextureClass {
	var merged []agronomy.TextureClass
	seen := make(map[agronomy.TextureClass]bool)
	for _, list := range lists {
		for _, class := range list {
			if seen[class] {
				continue
			}
			seen[class] = true
			merged = append(merged, class)
		}
	}
	return merged
}

// defaultProfiles is the built-in crop planning table. Yields and
// costs are per acre; prices are the fallback market quotes.
func defaultProfiles() []CropProfile {
	return []CropProfile{
		{
			Name:             "wheat",
			OptimalPH:        Range{6.0, 7.5},
			OptimalTemp:      Range{15, 25},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, claySoils),
			Season:           SeasonRabi,
			BaseYieldPerArea: 3000,
			BaseCostPerArea:  15000,
			BaseMarketPrice:  250,
			Unit:             "per_quintal",
		},
		{
			Name:             "rice",
			OptimalPH:        Range{5.5, 7.0},
			OptimalTemp:      Range{20, 35},
			WaterRequirement: WaterHigh,
			SoilTypes:        families(claySoils, siltySoils),
			Season:           SeasonKharif,
			BaseYieldPerArea: 4000,
			BaseCostPerArea:  20000,
			BaseMarketPrice:  300,
			Unit:             "per_quintal",
		},
		{
			Name:             "corn",
			OptimalPH:        Range{6.0, 7.0},
			OptimalTemp:      Range{18, 27},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, sandySoils),
			Season:           SeasonZaid,
			BaseYieldPerArea: 3500,
			BaseCostPerArea:  18000,
			BaseMarketPrice:  200,
			Unit:             "per_quintal",
		},
		{
			Name:             "sugarcane",
			OptimalPH:        Range{6.0, 7.5},
			OptimalTemp:      Range{20, 30},
			WaterRequirement: WaterHigh,
			SoilTypes:        families(loamySoils, claySoils),
			Season:           SeasonPerennial,
			BaseYieldPerArea: 80000,
			BaseCostPerArea:  25000,
			BaseMarketPrice:  350,
			Unit:             "per_ton",
		},
		{
			Name:             "cotton",
			OptimalPH:        Range{5.8, 8.0},
			OptimalTemp:      Range{21, 30},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, sandySoils),
			Season:           SeasonZaid,
			BaseYieldPerArea: 500,
			BaseCostPerArea:  22000,
			BaseMarketPrice:  6000,
			Unit:             "per_quintal",
		},
		{
			Name:             "soybean",
			OptimalPH:        Range{6.0, 7.0},
			OptimalTemp:      Range{20, 30},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, sandySoils),
			Season:           SeasonKharif,
			BaseYieldPerArea: 2000,
			BaseCostPerArea:  16000,
			BaseMarketPrice:  400,
			Unit:             "per_quintal",
		},
		{
			Name:             "potato",
			OptimalPH:        Range{4.8, 5.5},
			OptimalTemp:      Range{15, 20},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(sandySoils, loamySoils),
			Season:           SeasonRabi,
			BaseYieldPerArea: 25000,
			BaseCostPerArea:  30000,
			BaseMarketPrice:  20,
			Unit:             "per_kg",
		},
		{
			Name:             "tomato",
			OptimalPH:        Range{6.0, 6.8},
			OptimalTemp:      Range{18, 25},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, sandySoils),
			Season:           SeasonPerennial,
			BaseYieldPerArea: 50000,
			BaseCostPerArea:  35000,
			BaseMarketPrice:  30,
			Unit:             "per_kg",
		},
		{
			Name:             "mango",
			OptimalPH:        Range{5.5, 7.5},
			OptimalTemp:      Range{24, 30},
			WaterRequirement: WaterMedium,
			SoilTypes:        families(loamySoils, sandySoils),
			Season:           SeasonZaid,
			BaseYieldPerArea: 8000,
			BaseCostPerArea:  40000,
			BaseMarketPrice:  40,
			Unit:             "per_kg",
		},
		{
			Name:             "banana",
			OptimalPH:        Range{6.0, 7.5},
			OptimalTemp:      Range{26, 30},
			WaterRequirement: WaterHigh,
			SoilTypes:        families(loamySoils, claySoils),
			Season:           SeasonPerennial,
			BaseYieldPerArea: 30000,
			BaseCostPerArea:  25000,
			BaseMarketPrice:  25,
			Unit:             "per_kg",
		},
	}
}
