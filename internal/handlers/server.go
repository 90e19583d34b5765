package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"kinbea-inventory/internal/config"
	"kinbea-inventory/internal/inventory"
	"kinbea-inventory/internal/middleware"
	"kinbea-inventory/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Server wires HTTP routes to the workflow engine and the user store.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
	inv    *inventory.Engine
	log    *logrus.Logger
}

func NewServer(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	s := &Server{
		router: router,
		cfg:    cfg,
		db:     db,
		inv:    inventory.NewEngine(db, log),
		log:    log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })

	s.router.POST("/login", s.login)
	s.router.POST("/register", s.register)
	s.router.POST("/logout", s.logout)

	api := s.router.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		// OPEN TO BOTH ROLES
		api.GET("/products", s.listProducts)
		api.GET("/products/unpriced", s.listUnpriced)
		api.GET("/products/:id", s.getProduct)
		api.POST("/products", s.addProduct)
		api.POST("/products/:id/sale", s.recordSale)
		api.POST("/products/:id/restock", s.restock)
		api.PUT("/products/:id/price", s.editPrice)
		api.DELETE("/products/:id", s.deleteProduct)

		api.GET("/sold", s.listSold)
		api.POST("/sold/receive-all", s.receiveAll)
		api.POST("/sold/:id/receive", s.markReceived)
		api.DELETE("/sold/:id", s.deleteSoldItem)

		api.GET("/received", s.listReceived)
		api.DELETE("/received/:id", s.deleteReceived)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", s.listUsers)
			admin.DELETE("/users/:id", s.deleteUser)
			admin.GET("/reports/valuation", s.stockValuation)
			admin.GET("/reports/summary", s.salesSummary)
		}
	}
}

// errStatus maps engine errors onto HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrInvalidInput),
		errors.Is(err, inventory.ErrUnpriced),
		errors.Is(err, inventory.ErrDuplicateName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
