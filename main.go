package main

import (
	"log"

	api "creatorboard-backend/cmd/api"
	analyticsRepo "creatorboard-backend/internal/analytics/repository"
	analyticsUsecase "creatorboard-backend/internal/analytics/usecase"
	authdomain "creatorboard-backend/internal/auth/domain"
	authRepo "creatorboard-backend/internal/auth/repository"
	authUsecase "creatorboard-backend/internal/auth/usecase"
	contactUsecase "creatorboard-backend/internal/contact/usecase"
	statsUsecase "creatorboard-backend/internal/stats/usecase"
	"creatorboard-backend/pkg/config"
	"creatorboard-backend/pkg/database"
	"creatorboard-backend/pkg/mailer"
	"creatorboard-backend/pkg/token"
	"creatorboard-backend/pkg/youtube"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	scheduleRepo := analyticsRepo.NewMemoryScheduleRepository()

	// Initialize external services
	youtubeService := youtube.NewService(cfg.YouTubeAPIKey)
	mailService := mailer.NewService(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, cfg.EmailUser)
	issuer := token.NewIssuer(cfg.JWTSecret)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, issuer)
	statsUsecaseInstance := statsUsecase.NewStatsUsecase(youtubeService)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(mailService)
	analyticsUsecaseInstance := analyticsUsecase.NewAnalyticsUsecase(scheduleRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, statsUsecaseInstance, contactUsecaseInstance, analyticsUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s in %s mode", cfg.Port, cfg.Environment)
	if cfg.EmailUser != "" {
		log.Printf("Email configuration loaded for: %s", cfg.EmailUser)
	}
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
