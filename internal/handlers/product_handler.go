package handlers

import (
	"net/http"

	"kinbea-inventory/internal/inventory"

	"github.com/gin-gonic/gin"
)

type AddProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	PurchasePrice float64  `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"` // omit to add the product unpriced
	Category      string   `json:"category"`
	GroupName     string   `json:"group_name"`
}

// --- GET /api/products?category=&group= ---
func (s *Server) listProducts(c *gin.Context) {
	products, err := s.inv.ListProducts(c.Request.Context(), c.Query("category"), c.Query("group"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- GET /api/products/unpriced ---
func (s *Server) listUnpriced(c *gin.Context) {
	products, err := s.inv.ListUnpriced(c.Request.Context())
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- GET /api/products/:id ---
func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := s.inv.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- POST /api/products ---
func (s *Server) addProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := s.inv.AddProduct(c.Request.Context(), inventory.AddProductInput{
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Category:      req.Category,
		GroupName:     req.GroupName,
	})
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

type RestockRequest struct {
	Quantity      int     `json:"quantity" binding:"required"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price" binding:"required"`
}

// --- POST /api/products/:id/restock ---
func (s *Server) restock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := s.inv.Restock(c.Request.Context(), id, req.Quantity, req.PurchasePrice, req.SellingPrice)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

type EditPriceRequest struct {
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price" binding:"required"`
}

// --- PUT /api/products/:id/price ---
func (s *Server) editPrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req EditPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := s.inv.EditPrice(c.Request.Context(), id, req.PurchasePrice, req.SellingPrice)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- DELETE /api/products/:id ---
func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.inv.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
