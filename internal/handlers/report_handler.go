package handlers

import (
	"net/http"

	"kinbea-inventory/internal/database"

	"github.com/gin-gonic/gin"
)

// --- GET /api/reports/valuation ---
// Total monetary value of physical inventory at purchase cost, grouped by
// category.
func (s *Server) stockValuation(c *gin.Context) {
	report, err := database.StockValuation(s.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build valuation report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// --- GET /api/reports/summary ---
// Pending vs received revenue across the sold and received tables.
func (s *Server) salesSummary(c *gin.Context) {
	summary, err := database.GetSalesSummary(s.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
