package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/lookaway/lookaway/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Eligibility (public read access)
		v1.GET("/accounts/:id/eligibility", handler.GetEligibility)

		// Rankings (public read access)
		v1.GET("/entities/:type/rankings", handler.GetRankings)

		// Allocation (requires authentication; the JWT subject is the giving account)
		v1.POST("/entities/:type/:id/marshmallows", middleware.Auth(authCfg), handler.Allocate)
	}
}
