package model

// FinancingQuote is a derived value, recomputed on every call and never persisted.
type FinancingQuote struct {
	Vehicle          VehicleTrim `json:"vehicle"`
	Mode             FinanceMode `json:"mode"`
	TermMonths       int         `json:"term_months"`
	MonthlyPayment   float64     `json:"monthly_payment"`
	TotalCost        float64     `json:"total_cost"`
	ResidualOrResale float64     `json:"residual_or_resale_value"`
	MonthlyInsurance float64     `json:"monthly_insurance,omitempty"`
	MatchScore       int         `json:"match_score"`
}

// QuoteRequest compares lease vs finance for a single vehicle.
type QuoteRequest struct {
	Model         string  `json:"model" binding:"required"`
	TrimName      string  `json:"trim_name"`
	DownPayment   float64 `json:"down_payment"`
	LeaseTerm     int     `json:"lease_term"`   // default 36
	FinanceTerm   int     `json:"finance_term"` // default 60
	AnnualRate    float64 `json:"annual_rate"`  // decimal APR; 0 means derive from credit tier
	CreditTier    string  `json:"credit_tier"`
	AnnualMileage float64 `json:"annual_mileage"` // default 12000
}

// QuoteResponse mirrors the lease-vs-finance comparison card.
type QuoteResponse struct {
	Vehicle          VehicleTrim `json:"vehicle"`
	LeasePayment     float64     `json:"lease_payment"`
	FinancePayment   float64     `json:"finance_payment"`
	LeaseTotalCost   float64     `json:"lease_total_cost"`
	FinanceTotalCost float64     `json:"finance_total_cost"`
	ResaleValue      float64     `json:"resale_value"`
	NetFinanceCost   float64     `json:"net_finance_cost"`
	MonthlyInsurance float64     `json:"monthly_insurance"`
	Recommendation   string      `json:"recommendation"` // "lease" or "finance"
}

// RecommendRequest feeds the match scorer.
type RecommendRequest struct {
	Profile        UserProfile `json:"profile" binding:"required"`
	Mode           FinanceMode `json:"mode"`
	BudgetOverride float64     `json:"budget_override,omitempty"`
}

// RecommendResponse is the scored, filtered, sorted match list.
type RecommendResponse struct {
	Results   []FinancingQuote `json:"results"`
	FromCache bool             `json:"fromCache"`
}

// ResaleRequest mirrors the original /api/predict-resale body.
type ResaleRequest struct {
	Year          int     `json:"year"`
	Model         string  `json:"model" binding:"required"`
	Trim          string  `json:"trim"`
	OriginalPrice float64 `json:"originalPrice" binding:"required"`
	YearsOwned    float64 `json:"yearsOwned"`
	TotalMileage  float64 `json:"totalMileage"`
}

// ResaleResponse carries the predicted value and which path produced it.
type ResaleResponse struct {
	ResaleValue float64 `json:"resaleValue"`
	Source      string  `json:"source"` // "gemini" or "heuristic"
}
