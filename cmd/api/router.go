package api

import (
	"net/http"
	"time"

	analyticsDelivery "creatorboard-backend/internal/analytics/delivery"
	"creatorboard-backend/internal/auth/delivery"
	authUsecase "creatorboard-backend/internal/auth/usecase"
	contactDelivery "creatorboard-backend/internal/contact/delivery"
	statsDelivery "creatorboard-backend/internal/stats/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, statsHandler *statsDelivery.StatsHandler, contactHandler *contactDelivery.ContactHandler, analyticsHandler *analyticsDelivery.AnalyticsHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
		})

		// Auth routes
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/profile", delivery.AuthMiddleware(authUc), authHandler.Profile)

		// Video statistics proxy (no auth required)
		api.GET("/video-stats/:videoId", statsHandler.GetVideoStats)

		// Contact form (no auth required)
		api.POST("/contact", contactHandler.Send)

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(delivery.AuthMiddleware(authUc))
		{
			analytics.GET("/channel", analyticsHandler.AnalyzeChannel)
		}

		// Scheduled video routes (protected)
		schedule := api.Group("/schedule")
		schedule.Use(delivery.AuthMiddleware(authUc))
		{
			schedule.GET("", analyticsHandler.ListScheduledVideos)
			schedule.POST("", analyticsHandler.AddScheduledVideo)
			schedule.PUT("/:id", analyticsHandler.UpdateScheduledVideo)
			schedule.DELETE("/:id", analyticsHandler.RemoveScheduledVideo)
		}
	}
}
