package handlers

import (
	"regexp"

	"headset-lending-backend/cmd/docs"
	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/fanout"
	"headset-lending-backend/internal/middleware"
	"headset-lending-backend/internal/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var resourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *fanout.Hub,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/healthz", getHealth)

	setupAPIV1Routes(r, cfg, services, hub)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *fanout.Hub,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerHeadsetRoutes(v1, services.Projection)
	registerReservationRoutes(v1, cfg, services.Allocator, services.Projection)
	registerObserverRoutes(v1, hub)
}

func registerHeadsetRoutes(v1 *gin.RouterGroup, projection portssvc.ProjectionSvcFacade) {
	handler := newHeadsetHandler(projection)

	headsets := v1.Group("/headsets")
	{
		headsets.GET("", handler.listHeadsets)
		headsets.GET("/counts", handler.getCounts)
		headsets.GET("/:headsetID", handler.getHeadset)
	}
}

func registerReservationRoutes(v1 *gin.RouterGroup, cfg *config.Config, allocator portssvc.AllocatorSvcFacade, projection portssvc.ProjectionSvcFacade) {
	handler := newReservationHandler(allocator, projection)

	// Borrow/return are the contended paths; rate limit them per client IP.
	mutationLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  cfg.RateLimitRequests,
	})

	requests := v1.Group("/requests")
	{
		requests.GET("", handler.listRecentReservations)
		requests.GET("/active", handler.getActiveReservation)
		requests.POST("/borrow", middleware.RateLimit(mutationLimiter), handler.borrowHeadset)
		requests.POST("/return", middleware.RateLimit(mutationLimiter), handler.returnHeadset)
	}
}

func registerObserverRoutes(v1 *gin.RouterGroup, hub *fanout.Hub) {
	handler := newWSHandler(hub)
	v1.GET("/ws", handler.serveObserver)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidators installs the "resourceid" rule used by the request
// DTOs: the opaque identifiers accepted on the wire.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("resourceid", func(fl validator.FieldLevel) bool {
			return resourceIDPattern.MatchString(fl.Field().String())
		})
	}
}
