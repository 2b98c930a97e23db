package finance

import (
	"errors"
	"math"
	"testing"
)

func TestFinancePayment_AnnuityFormula(t *testing.T) {
	// $30k, $3k down, 3.5% APR, 60 months -> ~$491/mo
	got, err := FinancePayment(30000, 3000, 0.035, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 491 {
		t.Errorf("FinancePayment = %v, want 491", got)
	}
}

func TestFinancePayment_ZeroRateFallsBackToStraightDivision(t *testing.T) {
	got, err := FinancePayment(1200, 0, 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("zero-rate payment = %v, want 100", got)
	}
}

func TestFinancePayment_DownPaymentExceedsPrice(t *testing.T) {
	got, err := FinancePayment(10000, 12000, 0.05, 48)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("payment = %v, want 0 when principal <= 0", got)
	}
}

func TestFinancePayment_NeverNegative(t *testing.T) {
	prices := []float64{0, 500, 15000, 60000}
	downs := []float64{0, 1000, 70000}
	rates := []float64{0, 0.035, 0.099}
	terms := []int{12, 36, 72}

	for _, p := range prices {
		for _, d := range downs {
			for _, r := range rates {
				for _, n := range terms {
					got, err := FinancePayment(p, d, r, n)
					if err != nil {
						t.Fatalf("FinancePayment(%v,%v,%v,%d): %v", p, d, r, n, err)
					}
					if got < 0 {
						t.Errorf("FinancePayment(%v,%v,%v,%d) = %v, negative", p, d, r, n, got)
					}
				}
			}
		}
	}
}

func TestFinancePayment_InvalidInput(t *testing.T) {
	if _, err := FinancePayment(30000, 0, 0.05, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero term: expected ErrInvalidInput, got %v", err)
	}
	if _, err := FinancePayment(-1, 0, 0.05, 36); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative price: expected ErrInvalidInput, got %v", err)
	}
	if _, err := FinancePayment(30000, 0, -0.01, 36); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative rate: expected ErrInvalidInput, got %v", err)
	}
}

func TestLeasePayment_ReferenceScenario(t *testing.T) {
	// $35k, $5k down, 3% APR (money factor 0.00125), 36 months, 55% residual:
	// depreciation 10750/36 + finance charge 49250*0.00125 = 360.17 -> 360
	got, err := LeasePayment(35000, 5000, 0.03, 36, 0.55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 360 {
		t.Errorf("LeasePayment = %v, want 360", got)
	}
}

func TestLeasePayment_ClampsNegative(t *testing.T) {
	// Down payment close to price with a high residual pushes raw payment negative.
	got, err := LeasePayment(20000, 19000, 0.049, 36, 0.55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("LeasePayment = %v, want 0", got)
	}
}

func TestLeasePayment_RejectsBadResidual(t *testing.T) {
	if _, err := LeasePayment(30000, 0, 0.05, 36, 1.2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("residual > 1: expected ErrInvalidInput, got %v", err)
	}
	if _, err := LeasePayment(30000, 0, 0.05, 36, -0.1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("residual < 0: expected ErrInvalidInput, got %v", err)
	}
}

func TestMileageSurcharge(t *testing.T) {
	cases := []struct {
		miles float64
		want  float64
	}{
		{12000, 0},
		{15000, 45},
		{10000, -30},
		{25000, 195},
	}
	for _, c := range cases {
		if got := MileageSurcharge(c.miles); got != c.want {
			t.Errorf("MileageSurcharge(%v) = %v, want %v", c.miles, got, c.want)
		}
	}
}

func TestPayments_Idempotent(t *testing.T) {
	a, _ := FinancePayment(28750, 2500, 0.069, 72)
	b, _ := FinancePayment(28750, 2500, 0.069, 72)
	if a != b || math.IsNaN(a) {
		t.Errorf("same inputs produced %v then %v", a, b)
	}
}
