// Package handlers wires the HTTP surface: request binding, ownership-aware
// error mapping, and route registration.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/middleware"
	"github.com/tripflow/tripflow_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, cfg, services.User)
	registerTripRoutes(v1, services.Trip, services.Step, services.Checklist)
	registerStepRoutes(v1, services.Step, services.Journal)
	registerChecklistRoutes(v1, services.Checklist)
	registerGeocodeRoutes(v1, services.Geocoder)
}

// newAuthRateLimiter builds the per-IP limiter applied to login and
// registration. The in-memory store is enough for a single-process server.
func newAuthRateLimiter(cfg *config.Config) *limiter.Limiter {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.AuthRateLimit,
	}
	return limiter.New(memory.NewStore(), rate)
}
