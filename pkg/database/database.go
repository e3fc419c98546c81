package database

import (
	"docflow-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the shared GORM handle used by every repository
func NewPostgresConnection(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the schema for every collection the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Document{},
		&domain.Task{},
		&domain.CalendarEvent{},
		&domain.MailDraft{},
		&domain.Todo{},
		&domain.ProcessingLog{},
		&domain.Activity{},
	)
}
