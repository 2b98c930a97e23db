package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// GetVehicles lists the catalog, optionally filtered by category and keyword.
func GetVehicles(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	keyword := c.Query("keyword")
	refresh := c.Query("refresh") == "1"

	vehicles, fromCache := catalog.SearchCached(category, keyword, refresh)

	c.JSON(http.StatusOK, model.VehicleListResponse{
		Data:      vehicles,
		FromCache: fromCache,
	})
}

// GetHealth is the liveness probe.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
