package handlers

import (
	"errors"
	"net/http"

	"kinbea-inventory/internal/auth"
	"kinbea-inventory/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name             string `json:"name" binding:"required"`
	Username         string `json:"username" binding:"required"`
	Role             string `json:"role"`
	Password         string `json:"password" binding:"required"`
	AuthorizationKey string `json:"authorization_key"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Registration gate: only enforced when a key is configured.
	if s.cfg.RegistrationKey != "" && input.AuthorizationKey != s.cfg.RegistrationKey {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid authorization key"})
		return
	}

	if input.Role == "" {
		input.Role = models.RoleSales
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleSales {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	var existing models.User
	err := s.db.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Registering logs you straight in.
	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	s.log.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).
		Info("registered new user")

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"name":     user.Name,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (s *Server) login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// The two failure modes stay distinct on purpose: the shop wants to
	// know whether the account is missing or the password is wrong.
	var user models.User
	if err := s.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"name":     user.Name,
		"username": user.Username,
		"role":     user.Role,
	})
}

// logout always succeeds. Sessions are stateless bearer tokens; the client
// drops the token.
func (s *Server) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
