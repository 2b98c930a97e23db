package finance

import (
	"fmt"
	"math"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

const (
	earlyDepreciationRate = 0.16 // per year, first 3 years
	lateDepreciationRate  = 0.08 // per year afterwards
	earlyYears            = 3.0

	mileagePenaltyPerMile = 0.05
	resaleFloor           = 1000.0
)

// Tier multipliers: flagship trims hold value, economy trims shed it faster.
var tierMultipliers = map[model.ModelTier]float64{
	model.TierFlagship: 1.05,
	model.TierStandard: 1.0,
	model.TierEconomy:  0.95,
}

// PredictResaleValue estimates what a vehicle resells for after ageYears and
// totalMileage. Depreciation compounds at 16%/yr over the first 3 years and
// 8%/yr beyond them, applied piecewise so the curve stays continuous and
// non-increasing in age. The result is floored at $1000 and never exceeds the
// original price.
func PredictResaleValue(originalPrice, ageYears, totalMileage float64, tier model.ModelTier) (float64, error) {
	if originalPrice < 0 {
		return 0, fmt.Errorf("%w: negative price %.2f", ErrInvalidInput, originalPrice)
	}
	if ageYears < 0 || totalMileage < 0 {
		return 0, fmt.Errorf("%w: negative age or mileage", ErrInvalidInput)
	}

	early := math.Min(ageYears, earlyYears)
	late := math.Max(0, ageYears-earlyYears)
	retained := math.Pow(1-earlyDepreciationRate, early) * math.Pow(1-lateDepreciationRate, late)

	multiplier, ok := tierMultipliers[tier]
	if !ok {
		multiplier = 1.0
	}

	value := originalPrice*retained*multiplier - totalMileage*mileagePenaltyPerMile
	if value < resaleFloor {
		value = resaleFloor
	}
	if value > originalPrice {
		value = originalPrice
	}
	return math.Round(value), nil
}

// ResalePercent is the retained fraction of the original price, in [0,1].
func ResalePercent(originalPrice, ageYears, totalMileage float64, tier model.ModelTier) (float64, error) {
	if originalPrice <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %.2f", ErrInvalidInput, originalPrice)
	}
	value, err := PredictResaleValue(originalPrice, ageYears, totalMileage, tier)
	if err != nil {
		return 0, err
	}
	return value / originalPrice, nil
}
