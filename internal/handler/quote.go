package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/finance"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/service"
)

// PostQuote compares lease vs finance for one vehicle.
func PostQuote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := service.BuildQuote(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, finance.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PostRecommendations scores the catalog against a questionnaire profile.
func PostRecommendations(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := service.Recommend(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, finance.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PostPredictResale estimates a used vehicle's value.
func PostPredictResale(c *gin.Context) {
	var req model.ResaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := service.PredictResale(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, finance.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
