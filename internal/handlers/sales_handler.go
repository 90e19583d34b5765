package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SaleRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// --- POST /api/products/:id/sale ---
// The response carries both the sale record and the updated product so the
// caller can see the clamped counters.
func (s *Server) recordSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, sold, err := s.inv.RecordSale(c.Request.Context(), id, req.Quantity)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sold_item": sold,
		"product":   product,
	})
}

// --- GET /api/sold ---
func (s *Server) listSold(c *gin.Context) {
	items, total, err := s.inv.ListSold(c.Request.Context())
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "Failed to fetch sold items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// --- POST /api/sold/:id/receive ---
func (s *Server) markReceived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := s.inv.MarkReceived(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --- POST /api/sold/receive-all ---
func (s *Server) receiveAll(c *gin.Context) {
	migrated, err := s.inv.ReceiveAll(c.Request.Context())
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "Failed to migrate sold items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": migrated})
}

// --- DELETE /api/sold/:id ---
func (s *Server) deleteSoldItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.inv.DeleteSoldItem(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sold item deleted"})
}

// --- GET /api/received ---
func (s *Server) listReceived(c *gin.Context) {
	items, total, err := s.inv.ListReceived(c.Request.Context())
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "Failed to fetch received items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// --- DELETE /api/received/:id ---
func (s *Server) deleteReceived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.inv.DeleteReceived(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Received item deleted"})
}
