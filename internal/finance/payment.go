package finance

import (
	"fmt"
	"math"
)

const (
	// DefaultResidualPercent is the assumed lease residual for a 36-month term.
	DefaultResidualPercent = 0.55

	// DefaultLeaseTerm and DefaultFinanceTerm match the terms the product
	// quotes by default.
	DefaultLeaseTerm   = 36
	DefaultFinanceTerm = 60

	mileageSurchargePer1000 = 15.0
)

// FinancePayment computes the standard amortized-loan monthly payment, rounded
// to whole dollars. A zero rate falls back to straight division and a down
// payment at or above the price clamps the payment to zero.
func FinancePayment(price, downPayment, annualRate float64, termMonths int) (float64, error) {
	if err := validateTerms(price, annualRate, termMonths); err != nil {
		return 0, err
	}

	principal := price - downPayment
	if principal <= 0 {
		return 0, nil
	}

	n := float64(termMonths)
	if annualRate == 0 {
		return math.Round(principal / n), nil
	}

	r := annualRate / 12
	pow := math.Pow(1+r, n)
	payment := principal * r * pow / (pow - 1)
	if payment < 0 {
		payment = 0
	}
	return math.Round(payment), nil
}

// LeasePayment computes the monthly lease payment: depreciation of the
// capitalized cost down to residual, plus the finance charge on the money
// factor (APR/2400 with APR in percent, i.e. decimal rate / 24).
func LeasePayment(price, downPayment, annualRate float64, termMonths int, residualPercent float64) (float64, error) {
	if err := validateTerms(price, annualRate, termMonths); err != nil {
		return 0, err
	}
	if residualPercent < 0 || residualPercent > 1 {
		return 0, fmt.Errorf("%w: residual percent %.2f outside [0,1]", ErrInvalidInput, residualPercent)
	}

	residualValue := price * residualPercent
	moneyFactor := annualRate / 24

	depreciation := (price - downPayment - residualValue) / float64(termMonths)
	financeCharge := (price - downPayment + residualValue) * moneyFactor

	payment := depreciation + financeCharge
	if payment < 0 {
		payment = 0
	}
	return math.Round(payment), nil
}

// MileageSurcharge is the signed monthly lease adjustment: ±$15 per 1000
// miles/year around the 12,000 mi/yr baseline.
func MileageSurcharge(annualMileage float64) float64 {
	return math.Round((annualMileage - baselineAnnualMiles) / 1000 * mileageSurchargePer1000)
}

func validateTerms(price, annualRate float64, termMonths int) error {
	if termMonths <= 0 {
		return fmt.Errorf("%w: term %d months", ErrInvalidInput, termMonths)
	}
	if price < 0 {
		return fmt.Errorf("%w: negative price %.2f", ErrInvalidInput, price)
	}
	if annualRate < 0 {
		return fmt.Errorf("%w: negative rate %.4f", ErrInvalidInput, annualRate)
	}
	return nil
}
