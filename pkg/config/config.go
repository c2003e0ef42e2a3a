package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Environment       string
	DatabaseDSN       string
	JWTSecret         string
	YouTubeAPIKey     string
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	EmailUser         string
	StaticDir         string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=creatorboard port=5432 sslmode=disable"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		YouTubeAPIKey:     getEnv("YOUTUBE_API_KEY", ""),
		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		EmailUser:         getEnv("EMAIL_USER", ""),
		StaticDir:         getEnv("STATIC_DIR", "./public"),
	}
}

// IsDevelopment reports whether internal error detail may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
