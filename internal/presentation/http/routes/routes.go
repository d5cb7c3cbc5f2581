package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supthawee/farmgate-api/internal/config"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/internal/presentation/http/handler"
	"github.com/supthawee/farmgate-api/internal/presentation/http/middleware"
	"github.com/supthawee/farmgate-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Farmer       *handler.FarmerHandler
	Employee     *handler.EmployeeHandler
	Product      *handler.ProductHandler
	CarLicense   *handler.CarLicenseHandler
	SplitDefault *handler.SplitDefaultHandler
	Transaction  *handler.TransactionHandler
	Dashboard    *handler.DashboardHandler
	Printer      *handler.PrinterHandler
	Maintenance  *handler.MaintenanceHandler
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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
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

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/shop", h.Auth.UpdateShop)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/daily-summary", h.Dashboard.GetDailySummary)

	// Farmers and employees
	registerFarmerRoutes(protected, h)

	// Products and prices
	registerProductRoutes(protected, h)

	// Car licenses
	protected.POST("/car-licenses", h.CarLicense.Create)

	// Split defaults
	registerSplitDefaultRoutes(protected, h)

	// Transaction groups and lines
	registerTransactionRoutes(protected, h, deps)

	// Printer
	registerPrinterRoutes(protected, h)

	// Maintenance
	protected.POST("/maintenance/sweep", h.Maintenance.Sweep)
}

func registerFarmerRoutes(protected *gin.RouterGroup, h *Handlers) {
	farmers := protected.Group("/farmers")
	{
		farmers.GET("", h.Farmer.List)
		farmers.GET("/with-employees", h.Farmer.ListWithEmployees)
		farmers.POST("", h.Farmer.Create)
		farmers.GET("/:id", h.Farmer.Get)
		farmers.PUT("/:id", h.Farmer.Update)
		farmers.DELETE("/:id", h.Farmer.Delete)
		farmers.GET("/:id/employees", h.Employee.ListByFarmer)
		farmers.GET("/:id/car-licenses", h.CarLicense.ListByFarmer)
	}

	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/with-prices", h.Product.ListWithPrices)
		products.GET("/palm", h.Product.PalmPrices)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/prices", h.Product.AddPrice)
		products.GET("/:id/prices", h.Product.PriceHistory)
	}
}

func registerSplitDefaultRoutes(protected *gin.RouterGroup, h *Handlers) {
	splitDefaults := protected.Group("/split-defaults")
	{
		splitDefaults.GET("", h.SplitDefault.List)
		splitDefaults.GET("/lookup", h.SplitDefault.Lookup)
		splitDefaults.PUT("/:id", h.SplitDefault.Update)
		splitDefaults.DELETE("/:id", h.SplitDefault.Delete)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	groups := protected.Group("/transaction-groups")
	{
		groups.GET("", h.Transaction.ListGroups)
		groups.POST("", h.Transaction.CreateGroup)
		groups.GET("/:id", h.Transaction.GetGroup)
		groups.PUT("/:id", h.Transaction.UpdateGroup)
		groups.DELETE("/:id", h.Transaction.DeleteGroup)
		groups.POST("/:id/lines", h.Transaction.AddLine)
		// Submit and print use idempotency middleware so a double-tapped
		// button cannot pay a farmer or cut a receipt twice
		groups.POST("/:id/submit", idempotency, h.Transaction.SubmitGroup)
		groups.POST("/:id/print", idempotency, h.Printer.PrintGroup)
		groups.POST("/:id/print-summary", idempotency, h.Printer.PrintGroupSummary)
		groups.POST("/:id/harvest-broadcast", h.Transaction.BroadcastHarvest)
	}

	lines := protected.Group("/transaction-lines")
	{
		lines.PATCH("", h.Transaction.BulkUpdateLines)
		lines.DELETE("/:id", h.Transaction.DeleteLine)
	}

	// Flat recent-lines feed for the data table
	protected.GET("/transactions/lines", h.Transaction.LineFeed)
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
