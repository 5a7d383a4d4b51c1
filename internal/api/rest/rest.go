package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/futures-relic/relic-atelier/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-account story and blend state (public read access)
		v1.GET("/accounts/:account/assets", handler.GetInventory)
		v1.GET("/accounts/:account/recommendations", handler.GetRecommendations)
		v1.GET("/accounts/:account/scenes", handler.GetAccountScenes)
		v1.GET("/accounts/:account/progress", handler.GetProgress)

		// Progress mutations (open; the chain is the source of truth for
		// ownership, progress is a client-driven ratchet)
		v1.POST("/accounts/:account/scenes/:scene_id/unlock", handler.UnlockScene)
		v1.POST("/accounts/:account/blends/:blend_id/complete", handler.CompleteBlend)

		// Catalog endpoints (public read access)
		v1.GET("/blends", handler.GetBlends)
		v1.GET("/scenes", handler.GetScenes)
		v1.GET("/templates", handler.GetTemplates)
		v1.GET("/templates/:template_id", handler.GetTemplate)
		v1.GET("/collection/stats", handler.GetCollectionStats)

		// Scene management (requires JWT or API key authentication)
		admin := v1.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/scenes", handler.CreateScene)
			admin.PUT("/scenes/:scene_id", handler.UpdateScene)
			admin.DELETE("/scenes/:scene_id", handler.DeleteScene)
		}
	}
}
