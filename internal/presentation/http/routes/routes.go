package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uav-siberia/leads-api/internal/config"
	domainRepo "github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/internal/presentation/http/handler"
	"github.com/uav-siberia/leads-api/internal/presentation/http/middleware"
	"github.com/uav-siberia/leads-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Request   *handler.RequestHandler
	Message   *handler.MessageHandler
	Product   *handler.ProductHandler
	Proposal  *handler.ProposalHandler
	Assistant *handler.AssistantHandler
	Contact   *handler.ContactHandler
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
	// Public endpoints sit behind the per-client rate limiter; they are
	// reachable from the open site.
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	public := v1.Group("")
	public.Use(rateLimiter.Middleware())
	{
		public.POST("/contact", h.Contact.Submit)
		public.POST("/assistant/classify", h.Assistant.Classify)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	requests := protected.Group("/requests")
	{
		requests.GET("", h.Request.List)
		requests.POST("", h.Request.Create)
		// CSV import replays on retry instead of duplicating leads
		requests.POST("/import", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Request.Import)
		requests.GET("/export", h.Request.Export)
		requests.GET("/:id", h.Request.Get)
		requests.PUT("/:id", h.Request.Update)
		requests.DELETE("/:id", h.Request.Delete)

		requests.GET("/:id/messages", h.Message.List)
		requests.POST("/:id/messages", h.Message.Create)

		requests.POST("/:id/proposal/preview", h.Proposal.Preview)
		// A retried send must not stack duplicate send marks
		requests.POST("/:id/proposal", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Proposal.Send)
	}

	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}
