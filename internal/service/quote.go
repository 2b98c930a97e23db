package service

import (
	"fmt"
	"math"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/finance"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// BuildQuote runs the lease vs finance comparison for one vehicle.
func BuildQuote(req model.QuoteRequest) (model.QuoteResponse, error) {
	trim, ok := catalog.Find(req.Model, req.TrimName)
	if !ok {
		return model.QuoteResponse{}, fmt.Errorf("%w: unknown vehicle %q %q", finance.ErrInvalidInput, req.Model, req.TrimName)
	}

	leaseTerm := req.LeaseTerm
	if leaseTerm == 0 {
		leaseTerm = finance.DefaultLeaseTerm
	}
	financeTerm := req.FinanceTerm
	if financeTerm == 0 {
		financeTerm = finance.DefaultFinanceTerm
	}
	annualMileage := req.AnnualMileage
	if annualMileage == 0 {
		annualMileage = 12000
	}

	rate := req.AnnualRate
	if rate == 0 {
		tier := model.CreditTier(req.CreditTier)
		if tier == "" {
			tier = model.CreditGood
		}
		derived, err := finance.AnnualRate(tier)
		if err != nil {
			return model.QuoteResponse{}, err
		}
		rate = derived
	}
	if rate < 0 || rate > 1 {
		return model.QuoteResponse{}, fmt.Errorf("%w: annual rate %v", finance.ErrInvalidInput, rate)
	}

	leasePayment, err := finance.LeasePayment(trim.BasePrice, req.DownPayment, rate, leaseTerm, finance.DefaultResidualPercent)
	if err != nil {
		return model.QuoteResponse{}, err
	}
	leasePayment = math.Max(0, leasePayment+finance.MileageSurcharge(annualMileage))
	financePayment, err := finance.FinancePayment(trim.BasePrice, req.DownPayment, rate, financeTerm)
	if err != nil {
		return model.QuoteResponse{}, err
	}

	ownedYears := float64(financeTerm) / 12
	resaleValue, err := finance.PredictResaleValue(trim.BasePrice, ownedYears, annualMileage*ownedYears, trim.Tier)
	if err != nil {
		return model.QuoteResponse{}, err
	}

	leaseTotal := leasePayment*float64(leaseTerm) + req.DownPayment
	financeTotal := financePayment*float64(financeTerm) + req.DownPayment
	netFinanceCost := financeTotal - resaleValue

	// Finance wins when keeping the car and selling it later beats the
	// total of lease payments over the comparison window.
	recommendation := "lease"
	if netFinanceCost < leaseTotal {
		recommendation = "finance"
	}

	return model.QuoteResponse{
		Vehicle:          trim,
		LeasePayment:     leasePayment,
		FinancePayment:   financePayment,
		LeaseTotalCost:   leaseTotal,
		FinanceTotalCost: financeTotal,
		ResaleValue:      resaleValue,
		NetFinanceCost:   netFinanceCost,
		MonthlyInsurance: finance.MonthlyPremium(trim.Model, 0, 0),
		Recommendation:   recommendation,
	}, nil
}
