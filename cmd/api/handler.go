package api

import (
	"os"
	"path/filepath"

	analyticsDelivery "creatorboard-backend/internal/analytics/delivery"
	analyticsUsecase "creatorboard-backend/internal/analytics/usecase"
	authDelivery "creatorboard-backend/internal/auth/delivery"
	authUsecase "creatorboard-backend/internal/auth/usecase"
	contactDelivery "creatorboard-backend/internal/contact/delivery"
	contactUsecase "creatorboard-backend/internal/contact/usecase"
	statsDelivery "creatorboard-backend/internal/stats/delivery"
	statsUsecase "creatorboard-backend/internal/stats/usecase"
	"creatorboard-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	statsUsecase     statsUsecase.StatsUsecase
	contactUsecase   contactUsecase.ContactUsecase
	analyticsUsecase analyticsUsecase.AnalyticsUsecase
	config           *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, statsUc statsUsecase.StatsUsecase, contactUc contactUsecase.ContactUsecase, analyticsUc analyticsUsecase.AnalyticsUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:      authUc,
		statsUsecase:     statsUc,
		contactUsecase:   contactUc,
		analyticsUsecase: analyticsUc,
		config:           cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if !h.config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Static site, when the assets directory is present.
	if index := filepath.Join(h.config.StaticDir, "index.html"); fileExists(index) {
		r.StaticFile("/", index)
		r.Static("/assets", h.config.StaticDir)
	}

	authHandler := authDelivery.NewAuthHandler(h.authUsecase, h.config.IsDevelopment())
	statsHandler := statsDelivery.NewStatsHandler(h.statsUsecase, h.config.IsDevelopment())
	contactHandler := contactDelivery.NewContactHandler(h.contactUsecase, h.config.IsDevelopment())
	analyticsHandler := analyticsDelivery.NewAnalyticsHandler(h.analyticsUsecase)

	SetupRoutes(r, h.authUsecase, authHandler, statsHandler, contactHandler, analyticsHandler)

	return r.Run(addr)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
