package finance

import (
	"errors"
	"testing"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

func testTrim(name string, price float64, body model.BodyStyle, pt model.Powertrain) model.VehicleTrim {
	return model.VehicleTrim{
		Model:      name,
		TrimName:   "LE",
		Year:       2025,
		BasePrice:  price,
		CityMPG:    40,
		HighwayMPG: 40,
		BodyStyle:  body,
		Powertrain: pt,
		Tier:       model.TierStandard,
		Seating:    5,
	}
}

func TestRecommend_BudgetIsAHardFilter(t *testing.T) {
	// A single trim whose payment (~$546/mo) blows past budget x 1.30 must be
	// excluded entirely, returning an empty list rather than an error.
	catalog := []model.VehicleTrim{testTrim("Camry", 30000, model.BodySedan, model.PowertrainGas)}
	profile := model.UserProfile{
		TargetMonthlyPayment: 400,
		CreditTier:           model.CreditExcellent,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d quotes", len(got))
	}
}

func TestRecommend_FullPreferenceMatchScoresHigh(t *testing.T) {
	catalog := []model.VehicleTrim{testTrim("RAV4", 30000, model.BodySUV, model.PowertrainHybrid)}
	profile := model.UserProfile{
		DailyCommuteMiles:    30,
		BodyStylePreference:  model.BodySUV,
		PowertrainPreference: model.PowertrainHybrid,
		TargetMonthlyPayment: 500,
		DownPayment:          3000,
		CreditTier:           model.CreditExcellent,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	// 40 (body) + 30 (powertrain) + 20 (within budget) + bonuses
	if got[0].MatchScore < 90 || got[0].MatchScore > 100 {
		t.Errorf("match score = %d, want in [90,100]", got[0].MatchScore)
	}
	if got[0].MonthlyPayment != 491 {
		t.Errorf("monthly payment = %v, want 491", got[0].MonthlyPayment)
	}
}

func TestRecommend_PreferenceMismatchIsExcluded(t *testing.T) {
	catalog := []model.VehicleTrim{
		testTrim("Camry", 26000, model.BodySedan, model.PowertrainHybrid),
		testTrim("RAV4", 27000, model.BodySUV, model.PowertrainHybrid),
	}
	profile := model.UserProfile{
		BodyStylePreference:  model.BodySUV,
		TargetMonthlyPayment: 600,
		CreditTier:           model.CreditGood,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the SUV to survive, got %d quotes", len(got))
	}
	if got[0].Vehicle.Model != "RAV4" {
		t.Errorf("surviving trim = %s, want RAV4", got[0].Vehicle.Model)
	}
}

func TestRecommend_UnsetPreferenceFiltersNothingScoresNothing(t *testing.T) {
	catalog := []model.VehicleTrim{
		testTrim("Camry", 24000, model.BodySedan, model.PowertrainGas),
		testTrim("RAV4", 25000, model.BodySUV, model.PowertrainHybrid),
	}
	profile := model.UserProfile{
		TargetMonthlyPayment: 600,
		CreditTier:           model.CreditGood,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both trims, got %d", len(got))
	}
	for _, q := range got {
		// Without preferences the ceiling is 20 + 7 + 3.
		if q.MatchScore > 30 {
			t.Errorf("%s score = %d, want <= 30 with no preferences set", q.Vehicle.Model, q.MatchScore)
		}
	}
}

func TestRecommend_SortsByScoreThenPayment(t *testing.T) {
	// All three are SUV hybrids; the Highlander (~$772/mo) falls past the
	// budget cutoff, the RAV4 (~$565/mo) lands on a lower affordability rung
	// than the Corolla Cross (~$471/mo).
	catalog := []model.VehicleTrim{
		testTrim("Highlander", 41000, model.BodySUV, model.PowertrainHybrid),
		testTrim("RAV4", 30000, model.BodySUV, model.PowertrainHybrid),
		testTrim("Corolla Cross", 25000, model.BodySUV, model.PowertrainHybrid),
	}
	profile := model.UserProfile{
		DailyCommuteMiles:    20,
		BodyStylePreference:  model.BodySUV,
		PowertrainPreference: model.PowertrainHybrid,
		TargetMonthlyPayment: 500,
		CreditTier:           model.CreditGood,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(got))
	}
	if got[0].Vehicle.Model != "Corolla Cross" || got[1].Vehicle.Model != "RAV4" {
		t.Errorf("order = [%s, %s], want [Corolla Cross, RAV4]", got[0].Vehicle.Model, got[1].Vehicle.Model)
	}
	if got[0].MatchScore <= got[1].MatchScore {
		t.Errorf("scores not strictly descending: %d then %d", got[0].MatchScore, got[1].MatchScore)
	}
}

func TestRecommend_BudgetOverrideWins(t *testing.T) {
	catalog := []model.VehicleTrim{testTrim("Camry", 30000, model.BodySedan, model.PowertrainGas)}
	profile := model.UserProfile{
		TargetMonthlyPayment: 100, // would exclude everything
		CreditTier:           model.CreditExcellent,
	}

	got, err := Recommend(catalog, profile, model.ModeFinance, 600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("override budget should admit the trim, got %d quotes", len(got))
	}
}

func TestRecommend_LeaseModeUsesResidual(t *testing.T) {
	catalog := []model.VehicleTrim{testTrim("RAV4", 30000, model.BodySUV, model.PowertrainHybrid)}
	profile := model.UserProfile{
		TargetMonthlyPayment: 700,
		CreditTier:           model.CreditGood,
	}

	got, err := Recommend(catalog, profile, model.ModeLease, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	if got[0].TermMonths != DefaultLeaseTerm {
		t.Errorf("lease term = %d, want %d", got[0].TermMonths, DefaultLeaseTerm)
	}
	if got[0].ResidualOrResale != 16500 {
		t.Errorf("residual = %v, want 16500 (55%% of 30000)", got[0].ResidualOrResale)
	}
}

func TestRecommend_UnknownTierIsAnError(t *testing.T) {
	catalog := []model.VehicleTrim{testTrim("Camry", 30000, model.BodySedan, model.PowertrainGas)}
	profile := model.UserProfile{TargetMonthlyPayment: 500, CreditTier: "unknown"}

	if _, err := Recommend(catalog, profile, model.ModeFinance, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	profile := model.UserProfile{TargetMonthlyPayment: 500, CreditTier: model.CreditGood}
	got, err := Recommend(nil, profile, model.ModeFinance, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for empty catalog")
	}
}
