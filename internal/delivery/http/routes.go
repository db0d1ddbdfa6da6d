package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cochlearspare/backend/config"
	"github.com/cochlearspare/backend/internal/usecase"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, sessions *usecase.SessionService) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Catalog endpoints (no session required)
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/products", handler.ListProducts)
			catalog.GET("/products/:id", handler.GetProduct)
			catalog.GET("/brands", handler.ListBrands)
			catalog.GET("/devices", handler.ListDevices)
			catalog.GET("/categories", handler.ListCategories)
			catalog.GET("/posts", handler.ListPosts)
			catalog.GET("/posts/:id", handler.GetPost)
		}

		// Session creation has no session yet
		v1.POST("/sessions", handler.CreateSession)

		// Session-scoped endpoints
		scoped := v1.Group("")
		scoped.Use(SessionMiddleware(sessions))
		{
			scoped.GET("/session", handler.GetSession)
			scoped.POST("/session/navigate", handler.Navigate)
			scoped.PUT("/session/filter", handler.SetFilter)
			scoped.DELETE("/session/filter", handler.ClearFilter)

			scoped.GET("/cart", handler.GetCart)
			scoped.POST("/cart/items", handler.AddCartItem)
			scoped.POST("/cart/items/:index/increment", handler.IncrementCartItem)
			scoped.POST("/cart/items/:index/decrement", handler.DecrementCartItem)
			scoped.DELETE("/cart/items/:index", handler.RemoveCartItem)

			scoped.POST("/checkout", handler.Checkout)

			scoped.GET("/assistant/messages", handler.ListMessages)
			scoped.POST("/assistant/messages", handler.SubmitMessage)
		}
	}

	return router
}
