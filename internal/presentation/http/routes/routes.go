package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/config"
	domainRepo "github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/internal/presentation/http/handler"
	"github.com/comdesk/comdesk-api/internal/presentation/http/middleware"
	"github.com/comdesk/comdesk-api/pkg/logger"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Directory     *handler.DirectoryHandler
	Quotation     *handler.QuotationHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Invoice       *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Log             *logger.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-salesperson rate limiter
		rateLimiter := middleware.NewSalesPersonRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/me", h.Auth.Me)

	// Directories
	protected.GET("/vendors", h.Directory.ListVendors)
	protected.GET("/vendors/:name", h.Directory.GetVendor)
	protected.GET("/end-users", h.Directory.ListEndUsers)
	protected.GET("/end-users/:name", h.Directory.GetEndUser)
	protected.GET("/products", h.Directory.ListProducts)
	protected.GET("/products/:name", h.Directory.GetProduct)

	// Generate endpoints replay cached responses on a repeated
	// Idempotency-Key so a retry cannot burn a second number.
	idem := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	quotations := protected.Group("/quotations")
	{
		quotations.GET("/next-number", h.Quotation.PreviewNumber)
		quotations.POST("", idem, h.Quotation.Generate)
		quotations.POST("/sequence/reset", h.Quotation.ResetSequence)
	}

	purchaseOrders := protected.Group("/purchase-orders")
	{
		purchaseOrders.GET("/next-number", h.PurchaseOrder.PreviewNumber)
		purchaseOrders.POST("", idem, h.PurchaseOrder.Generate)
		purchaseOrders.POST("/sequence/reset", h.PurchaseOrder.ResetSequence)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.GET("/next-number", h.Invoice.PreviewNumber)
		invoices.POST("", idem, h.Invoice.Generate)
		invoices.POST("/sequence/reset", h.Invoice.ResetSequence)
	}
}
