package service

import (
	"log"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/finance"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/llm"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// PredictResale answers a resale request, preferring the language model and
// falling back to the local depreciation curve on any failure.
func PredictResale(req model.ResaleRequest) (model.ResaleResponse, error) {
	if llm.Enabled() {
		value, err := llm.PredictResale(req.Model, req.Trim, req.Year, req.OriginalPrice, req.YearsOwned, req.TotalMileage)
		if err == nil {
			return model.ResaleResponse{ResaleValue: value, Source: "gemini"}, nil
		}
		log.Printf("[RESALE] llm prediction failed, using heuristic: %v", err)
	}

	tier := model.TierStandard
	if trim, ok := catalog.Find(req.Model, req.Trim); ok {
		tier = trim.Tier
	}

	value, err := finance.PredictResaleValue(req.OriginalPrice, req.YearsOwned, req.TotalMileage, tier)
	if err != nil {
		return model.ResaleResponse{}, err
	}

	return model.ResaleResponse{ResaleValue: value, Source: "heuristic"}, nil
}
