package finance

import (
	"math"
	"sort"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// Scoring weights out of 100.
const (
	bodyStyleWeight  = 40
	powertrainWeight = 30
	maxFuelBonus     = 7.0
	maxResaleBonus   = 3.0

	// Trims priced beyond the last affordability rung are dropped entirely.
	budgetCutoffFactor = 1.30

	workdaysPerMonth = 22.0
)

// Recommend scores every catalog trim against the profile and returns the
// surviving quotes sorted by match score (ties broken by cheaper payment).
// An empty result is a valid outcome, not an error.
func Recommend(catalog []model.VehicleTrim, profile model.UserProfile, mode model.FinanceMode, budgetOverride float64) ([]model.FinancingQuote, error) {
	rate, err := AnnualRate(profile.CreditTier)
	if err != nil {
		return nil, err
	}

	budget := profile.TargetMonthlyPayment
	if budgetOverride > 0 {
		budget = budgetOverride
	}

	annualMileage := profile.AnnualMileage
	if annualMileage <= 0 {
		annualMileage = baselineAnnualMiles
	}

	quotes := make([]model.FinancingQuote, 0, len(catalog))
	for _, trim := range catalog {
		// Explicit preferences are hard filters, not soft penalties.
		if profile.BodyStylePreference != "" && trim.BodyStyle != profile.BodyStylePreference {
			continue
		}
		if profile.PowertrainPreference != "" && trim.Powertrain != profile.PowertrainPreference {
			continue
		}

		quote, err := quoteTrim(trim, profile, mode, rate, annualMileage)
		if err != nil {
			return nil, err
		}
		if quote.MonthlyPayment > budget*budgetCutoffFactor {
			continue
		}

		quote.MatchScore = scoreTrim(trim, profile, quote.MonthlyPayment, budget)
		quotes = append(quotes, quote)
	}

	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].MatchScore != quotes[j].MatchScore {
			return quotes[i].MatchScore > quotes[j].MatchScore
		}
		if quotes[i].MonthlyPayment != quotes[j].MonthlyPayment {
			return quotes[i].MonthlyPayment < quotes[j].MonthlyPayment
		}
		return quotes[i].Vehicle.BasePrice < quotes[j].Vehicle.BasePrice
	})

	return quotes, nil
}

func quoteTrim(trim model.VehicleTrim, profile model.UserProfile, mode model.FinanceMode, rate, annualMileage float64) (model.FinancingQuote, error) {
	quote := model.FinancingQuote{Vehicle: trim, Mode: mode}

	switch mode {
	case model.ModeLease:
		quote.TermMonths = DefaultLeaseTerm
		payment, err := LeasePayment(trim.BasePrice, profile.DownPayment, rate, DefaultLeaseTerm, DefaultResidualPercent)
		if err != nil {
			return model.FinancingQuote{}, err
		}
		quote.MonthlyPayment = math.Max(0, payment+MileageSurcharge(annualMileage))
		quote.ResidualOrResale = math.Round(trim.BasePrice * DefaultResidualPercent)
	default:
		quote.TermMonths = DefaultFinanceTerm
		payment, err := FinancePayment(trim.BasePrice, profile.DownPayment, rate, DefaultFinanceTerm)
		if err != nil {
			return model.FinancingQuote{}, err
		}
		quote.MonthlyPayment = payment

		years := float64(DefaultFinanceTerm) / 12
		resale, err := PredictResaleValue(trim.BasePrice, years, annualMileage*years, trim.Tier)
		if err != nil {
			return model.FinancingQuote{}, err
		}
		quote.ResidualOrResale = resale
	}

	quote.TotalCost = quote.MonthlyPayment*float64(quote.TermMonths) + profile.DownPayment
	quote.MonthlyInsurance = MonthlyPremium(trim.Model, 0, 0)
	return quote, nil
}

func scoreTrim(trim model.VehicleTrim, profile model.UserProfile, payment, budget float64) int {
	score := 0

	// Unset preference scores 0; it only relaxes the filter above.
	if profile.BodyStylePreference != "" && trim.BodyStyle == profile.BodyStylePreference {
		score += bodyStyleWeight
	}
	if profile.PowertrainPreference != "" && trim.Powertrain == profile.PowertrainPreference {
		score += powertrainWeight
	}

	switch {
	case payment <= budget:
		score += 20
	case payment <= budget*1.10:
		score += 15
	case payment <= budget*1.20:
		score += 10
	case payment <= budget*1.30:
		score += 5
	}

	score += fuelBonus(trim, profile.DailyCommuteMiles)
	score += resaleBonus(trim)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// fuelBonus rewards efficient vehicles in proportion to how much commuting the
// profile actually does; capped at maxFuelBonus.
func fuelBonus(trim model.VehicleTrim, dailyCommuteMiles float64) int {
	monthlyMiles := dailyCommuteMiles * workdaysPerMonth
	exposure := math.Min(1, monthlyMiles/1500)
	mpgScore := math.Min(1, trim.AverageMPG()/60)
	return int(math.Round(maxFuelBonus * mpgScore * exposure))
}

// resaleBonus rewards trims predicted to retain value after a typical 3-year,
// 36k-mile ownership window.
func resaleBonus(trim model.VehicleTrim) int {
	pct, err := ResalePercent(trim.BasePrice, 3, 3*baselineAnnualMiles, trim.Tier)
	if err != nil {
		return 0
	}
	return int(math.Round(maxResaleBonus * pct))
}
