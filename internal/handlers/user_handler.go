package handlers

import (
	"net/http"

	"kinbea-inventory/internal/middleware"
	"kinbea-inventory/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET /api/users ---
func (s *Server) listUsers(c *gin.Context) {
	var users []models.User
	if err := s.db.Order("id desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// --- DELETE /api/users/:id ---
func (s *Server) deleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// An admin cannot delete their own account mid-session.
	if callerID, exists := c.Get(middleware.CtxUserID); exists && callerID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
