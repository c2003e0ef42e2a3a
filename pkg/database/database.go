package database

import (
	"creatorboard-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the application database. Error translation is
// enabled so that unique-index violations surface as gorm.ErrDuplicatedKey,
// which the auth repository relies on to detect duplicate signups.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
}
