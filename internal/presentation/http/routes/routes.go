package routes

import (
	"time"

	"github.com/faturango/fatura-api/internal/config"
	domainRepo "github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/internal/presentation/http/handler"
	"github.com/faturango/fatura-api/internal/presentation/http/middleware"
	"github.com/faturango/fatura-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Invoice *handler.InvoiceHandler
	Render  *handler.RenderHandler
	Proof   *handler.ProofHandler
	Admin   *handler.AdminHandler
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

	// Per-client rate limiter applied to the whole API surface
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerInvoiceRoutes(v1, h)
		registerProofRoutes(v1, h, deps)
		registerAdminRoutes(v1, h, deps)
	}

	return router
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Create)
		invoices.POST("/retrieve", h.Invoice.Retrieve)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id", h.Invoice.UpdateDetails)
		invoices.DELETE("/:id", h.Invoice.Delete)

		invoices.POST("/:id/logo", h.Invoice.UploadLogo)
		invoices.DELETE("/:id/logo", h.Invoice.RemoveLogo)

		invoices.POST("/:id/items", h.Invoice.AddItem)
		invoices.PUT("/:id/items/:item_id", h.Invoice.UpdateItem)
		invoices.DELETE("/:id/items/:item_id", h.Invoice.RemoveItem)

		invoices.PUT("/:id/template", h.Invoice.SelectTemplate)
		invoices.POST("/:id/reset", h.Invoice.Reset)
		invoices.POST("/:id/validate", h.Invoice.Validate)
		invoices.POST("/:id/archive", h.Invoice.Archive)

		// Rendering
		invoices.GET("/:id/render", h.Render.Page)
		invoices.GET("/:id/print", h.Render.Print)
		invoices.GET("/:id/pdf", h.Render.PDF)
	}
}

func registerProofRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	proofs := v1.Group("/proofs")
	{
		// Proof submission uses idempotency middleware to prevent duplicates
		proofs.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Proof.Submit)
		proofs.GET("/:id", h.Proof.Status)
	}
}

func registerAdminRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	admin := v1.Group("/admin")
	{
		admin.POST("/login", h.Admin.Login)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuthMiddleware(deps.JWTManager))
		{
			protected.GET("/proofs", h.Admin.ListProofs)
			protected.POST("/proofs/:id/approve", h.Admin.ApproveProof)
			protected.POST("/proofs/:id/reject", h.Admin.RejectProof)
		}
	}
}
