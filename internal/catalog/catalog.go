// Package catalog holds the static 2025 vehicle line-up and cached search over it.
package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

type trimSpec struct {
	name      string
	msrp      float64
	city, hwy float64
}

type modelSpec struct {
	model      string
	year       int
	body       model.BodyStyle
	powertrain model.Powertrain
	tier       model.ModelTier
	seating    int
	trims      []trimSpec
}

// The line-up is fixed at build time; trims are expanded once into the flat
// catalog below and never mutated afterwards.
var lineup = []modelSpec{
	{"Camry", 2025, model.BodySedan, model.PowertrainHybrid, model.TierStandard, 5, []trimSpec{
		{"LE", 28700, 53, 50},
		{"SE", 31000, 48, 47},
		{"XLE", 33700, 48, 47},
		{"XSE", 34900, 48, 47},
	}},
	{"Corolla", 2025, model.BodySedan, model.PowertrainGas, model.TierEconomy, 5, []trimSpec{
		{"LE", 22325, 32, 41},
		{"SE", 24765, 31, 40},
		{"FX", 26650, 31, 40},
		{"XSE", 28040, 31, 40},
	}},
	{"RAV4", 2025, model.BodySUV, model.PowertrainGas, model.TierStandard, 5, []trimSpec{
		{"LE", 29550, 27, 35},
		{"XLE", 31060, 27, 35},
		{"XLE Premium", 33950, 27, 35},
		{"Limited", 37855, 27, 35},
	}},
	{"Highlander", 2025, model.BodySUV, model.PowertrainGas, model.TierFlagship, 8, []trimSpec{
		{"LE", 40320, 22, 29},
		{"XLE", 43470, 22, 29},
		{"XSE", 47140, 22, 29},
		{"Limited", 47575, 21, 28},
		{"Platinum", 52725, 21, 28},
	}},
	{"Tacoma", 2025, model.BodyTruck, model.PowertrainGas, model.TierStandard, 5, []trimSpec{
		{"SR", 31590, 20, 23},
		{"SR5", 36220, 20, 23},
		{"TRD PreRunner", 38120, 20, 23},
		{"TRD Sport", 39400, 20, 23},
		{"TRD Off-Road", 41800, 20, 23},
		{"Limited", 52555, 20, 23},
	}},
	{"Prius", 2025, model.BodySedan, model.PowertrainHybrid, model.TierEconomy, 5, []trimSpec{
		{"LE", 28495, 57, 56},
		{"LE AWD", 29750, 53, 54},
		{"XLE", 31795, 52, 52},
		{"XLE AWD", 33195, 49, 50},
		{"Limited", 35635, 52, 52},
		{"Limited AWD", 36765, 49, 50},
	}},
	{"Tundra", 2025, model.BodyTruck, model.PowertrainGas, model.TierFlagship, 5, []trimSpec{
		{"SR", 40090, 18, 24},
		{"SR5", 45960, 18, 24},
		{"Limited", 54305, 18, 24},
		{"Platinum", 63675, 18, 24},
		{"1794 Edition", 64360, 18, 24},
	}},
	{"4Runner", 2025, model.BodySUV, model.PowertrainGas, model.TierFlagship, 5, []trimSpec{
		{"SR5", 41270, 16, 19},
		{"TRD Sport", 47750, 16, 19},
		{"TRD Sport Premium", 53110, 16, 19},
		{"TRD Off-Road", 49690, 16, 19},
		{"TRD Off-Road Premium", 55470, 16, 19},
		{"Limited", 55900, 16, 19},
	}},
	{"Corolla Cross", 2025, model.BodySUV, model.PowertrainGas, model.TierEconomy, 5, []trimSpec{
		{"L", 24135, 31, 33},
		{"LE", 26465, 31, 33},
		{"XLE", 28360, 31, 33},
	}},
	{"Grand Highlander", 2025, model.BodySUV, model.PowertrainGas, model.TierFlagship, 8, []trimSpec{
		{"LE", 40860, 21, 28},
		{"XLE", 43630, 21, 28},
		{"Limited", 48360, 20, 26},
		{"Platinum", 54045, 20, 26},
	}},
	{"bZ4X", 2025, model.BodySUV, model.PowertrainElectric, model.TierStandard, 5, []trimSpec{
		{"XLE", 37070, 119, 100},
		{"Nightshade", 40420, 119, 100},
		{"Limited", 41800, 119, 100},
	}},
	{"Sienna", 2025, model.BodyVan, model.PowertrainHybrid, model.TierStandard, 8, []trimSpec{
		{"LE", 39485, 36, 36},
		{"XLE", 44295, 36, 36},
		{"XSE", 46940, 36, 36},
		{"Woodland Edition", 50725, 35, 36},
		{"Limited", 50500, 36, 36},
		{"Platinum", 56445, 36, 36},
	}},
}

var (
	trimsOnce sync.Once
	trims     []model.VehicleTrim
)

func buildTrims() {
	for _, m := range lineup {
		for _, t := range m.trims {
			trims = append(trims, model.VehicleTrim{
				Model:      m.model,
				TrimName:   t.name,
				Year:       m.year,
				BasePrice:  t.msrp,
				CityMPG:    t.city,
				HighwayMPG: t.hwy,
				BodyStyle:  m.body,
				Powertrain: m.powertrain,
				Tier:       m.tier,
				Seating:    m.seating,
			})
		}
	}
}

// All returns a copy of the full trim catalog.
func All() []model.VehicleTrim {
	trimsOnce.Do(buildTrims)
	out := make([]model.VehicleTrim, len(trims))
	copy(out, trims)
	return out
}

// Search filters by category tab and keyword. Category matches either a body
// style or a powertrain (the browse tabs mix both); "all" or "" matches
// everything. Keyword matches model or trim name, case-insensitive.
func Search(category, keyword string) []model.VehicleTrim {
	trimsOnce.Do(buildTrims)

	category = strings.ToLower(strings.TrimSpace(category))
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	out := make([]model.VehicleTrim, 0, len(trims))
	for _, t := range trims {
		if category != "" && category != "all" &&
			category != string(t.BodyStyle) && category != string(t.Powertrain) {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(t.Model), keyword) &&
			!strings.Contains(strings.ToLower(t.TrimName), keyword) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SearchCached serves search results through the cache provider so repeated
// browse requests skip the scan. refresh forces a recompute.
func SearchCached(category, keyword string, refresh bool) ([]model.VehicleTrim, bool) {
	key := "catalog:search:" + strings.ToLower(category) + ":" + strings.ToLower(keyword)

	if !refresh {
		var cached []model.VehicleTrim
		if err := getCacheProvider().Get(key, &cached); err == nil {
			return cached, true
		}
	}

	result := Search(category, keyword)
	_ = getCacheProvider().Set(key, result, time.Hour)
	return result, false
}

// Find locates a trim by model name (case-insensitive). An empty trim name
// returns the model's base trim.
func Find(modelName, trimName string) (model.VehicleTrim, bool) {
	trimsOnce.Do(buildTrims)

	modelName = strings.ToLower(strings.TrimSpace(modelName))
	trimName = strings.ToLower(strings.TrimSpace(trimName))

	for _, t := range trims {
		if strings.ToLower(t.Model) != modelName {
			continue
		}
		if trimName == "" || strings.ToLower(t.TrimName) == trimName {
			return t, true
		}
	}
	return model.VehicleTrim{}, false
}
