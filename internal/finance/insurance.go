package finance

import (
	"math"
	"strings"
)

const (
	defaultBasePremium = 150.0
	minimumPremium     = 25.0

	// Annual-mileage baseline shared with the lease surcharge.
	baselineAnnualMiles = 12000.0
)

// Monthly base premiums keyed by case-insensitive substring of the model name.
// Ordered so longer names win over their prefixes (e.g. "grand highlander").
var premiumTable = []struct {
	match string
	base  float64
}{
	{"grand highlander", 190},
	{"corolla cross", 150},
	{"highlander", 185},
	{"4runner", 190},
	{"corolla", 135},
	{"tundra", 195},
	{"tacoma", 175},
	{"sienna", 170},
	{"camry", 155},
	{"prius", 145},
	{"rav4", 165},
	{"bz4x", 180},
}

// MonthlyPremium estimates an insurance premium for a model at a given age and
// odometer reading. Factors multiply; the result is rounded to whole dollars
// and floored at the minimum premium.
func MonthlyPremium(modelName string, ageYears, totalMileage float64) float64 {
	base := defaultBasePremium
	lower := strings.ToLower(modelName)
	for _, entry := range premiumTable {
		if strings.Contains(lower, entry.match) {
			base = entry.base
			break
		}
	}

	ageFactor := 1.0
	switch {
	case ageYears > 10:
		ageFactor = 0.95
	case ageYears > 3:
		ageFactor = 1.05
	}

	// +10% for every 30k miles/year driven above the baseline; no low-mileage discount.
	milesPerYear := baselineAnnualMiles
	if ageYears > 0 {
		milesPerYear = totalMileage / ageYears
	}
	mileageFactor := 1 + 0.10*((milesPerYear-baselineAnnualMiles)/30000)
	if mileageFactor < 1 {
		mileageFactor = 1
	}

	premium := math.Round(base * ageFactor * mileageFactor)
	if premium < minimumPremium {
		premium = minimumPremium
	}
	return premium
}
