package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jamaney/mmtacos-api/internal/config"
	domainRepo "github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/handler"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/middleware"
	"github.com/jamaney/mmtacos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Register    *handler.RegisterHandler
	Order       *handler.OrderHandler
	Report      *handler.ReportHandler
	Product     *handler.ProductHandler
	ClientOrder *handler.ClientOrderHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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
		registerPublicRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// The storefront checkout is unauthenticated, so it gets a per-IP
	// rate limiter that the terminal endpoints do not need.
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	v1.POST("/client-orders", rateLimiter.Middleware(), h.ClientOrder.Create)

	// The storefront also reads the menu without logging in.
	v1.GET("/products", h.Product.List)
	v1.GET("/products/:slug", h.Product.Get)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Register lifecycle
	registerRegisterRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Reports
	registerReportRoutes(protected, h)

	// Products
	registerProductRoutes(protected, h)

	// Client orders (back office)
	registerClientOrderRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerRegisterRoutes(protected *gin.RouterGroup, h *Handlers) {
	register := protected.Group("/register")
	{
		register.GET("/state", h.Register.GetState)
		register.GET("/days", h.Register.ListDays)
		register.POST("/days", h.Register.OpenDay)
		register.POST("/days/close", h.Register.CloseDay)
		register.POST("/shifts", h.Register.StartShift)
		register.POST("/shifts/end", h.Register.EndShift)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Sale recording honors the Idempotency-Key header so a retried
		// request cannot produce a duplicate order
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/ticket/:code", h.Order.GetByTicketCode)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/print", h.Order.ReprintReceipt)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/sessions/:id", h.Report.GetSessionReport)
		reports.GET("/days/:id", h.Report.GetDayReport)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Reads are registered on the public group; only writes live here.
	adminProducts := protected.Group("/products")
	adminProducts.Use(middleware.RequireRole("admin"))
	{
		adminProducts.POST("", h.Product.Create)
		adminProducts.PUT("/:slug", h.Product.Update)
		adminProducts.DELETE("/:slug", h.Product.Delete)
	}
}

func registerClientOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	clientOrders := protected.Group("/client-orders")
	{
		clientOrders.GET("", h.ClientOrder.List)
		clientOrders.GET("/:id", h.ClientOrder.Get)
		clientOrders.PATCH("/:id/status", h.ClientOrder.UpdateStatus)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
