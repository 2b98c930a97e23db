package service

import (
	"fmt"
	"log"
	"time"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/cache"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/finance"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

const recommendCacheTTL = 10 * time.Minute

// Recommend scores the catalog against a questionnaire profile. Results are
// cached briefly since the showroom page re-requests on every filter change.
func Recommend(req model.RecommendRequest) (model.RecommendResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = model.ModeLease
	}

	cacheKey := recommendCacheKey(req.Profile, mode, req.BudgetOverride)
	if cache.Enabled() {
		var cached []model.FinancingQuote
		if err := cache.Get(cacheKey, &cached); err == nil {
			return model.RecommendResponse{Results: cached, FromCache: true}, nil
		}
	}

	results, err := finance.Recommend(catalog.All(), req.Profile, mode, req.BudgetOverride)
	if err != nil {
		return model.RecommendResponse{}, err
	}

	if cache.Enabled() {
		if err := cache.Set(cacheKey, results, recommendCacheTTL); err != nil {
			log.Printf("[RECOMMEND] cache write failed: %v", err)
		}
	}

	return model.RecommendResponse{Results: results, FromCache: false}, nil
}

func recommendCacheKey(p model.UserProfile, mode model.FinanceMode, budgetOverride float64) string {
	return fmt.Sprintf("recommend:%s:%s:%s:%s:%.0f:%.0f:%.0f:%.0f:%.0f",
		mode, p.CreditTier, p.BodyStylePreference, p.PowertrainPreference,
		p.TargetMonthlyPayment, p.DownPayment, p.DailyCommuteMiles, p.AnnualMileage,
		budgetOverride)
}
