package model

// CreditTier questionnaire credit-score bands.
type CreditTier string

const (
	CreditExcellent CreditTier = "excellent" // 750+
	CreditGood      CreditTier = "good"      // 700-749
	CreditFair      CreditTier = "fair"      // 650-699
	CreditPoor      CreditTier = "poor"      // <650
)

// FinanceMode lease vs finance.
type FinanceMode string

const (
	ModeLease   FinanceMode = "lease"
	ModeFinance FinanceMode = "finance"
)

// UserProfile is the questionnaire output. Read-only input to the valuation core;
// empty preference strings mean "no preference".
type UserProfile struct {
	DailyCommuteMiles    float64    `json:"daily_commute_miles"`
	BodyStylePreference  BodyStyle  `json:"body_style_preference,omitempty"`
	PowertrainPreference Powertrain `json:"powertrain_preference,omitempty"`
	TargetMonthlyPayment float64    `json:"target_monthly_payment"`
	DownPayment          float64    `json:"down_payment"`
	CreditTier           CreditTier `json:"credit_tier"`
	AnnualMileage        float64    `json:"annual_mileage,omitempty"`
}
