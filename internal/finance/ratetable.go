// Package finance holds the pure valuation core: APR lookup, insurance and
// depreciation heuristics, lease/finance payment math, and the match scorer.
// Everything here is deterministic and side-effect free.
package finance

import (
	"errors"
	"fmt"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// ErrInvalidInput marks inputs the calculators refuse to work with.
var ErrInvalidInput = errors.New("invalid input")

// Canonical APR table by credit tier. The two calculator revisions in the
// original app disagreed on fair/poor; these are the values used everywhere now.
var annualRates = map[model.CreditTier]float64{
	model.CreditExcellent: 0.035,
	model.CreditGood:      0.049,
	model.CreditFair:      0.069,
	model.CreditPoor:      0.099,
}

// AnnualRate maps a credit tier to a decimal APR. Unknown tiers are an error,
// never a silent default.
func AnnualRate(tier model.CreditTier) (float64, error) {
	rate, ok := annualRates[tier]
	if !ok {
		return 0, fmt.Errorf("%w: unknown credit tier %q", ErrInvalidInput, tier)
	}
	return rate, nil
}
