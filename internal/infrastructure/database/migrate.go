package database

import (
	"github.com/staylodge/guest-service/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	err := db.AutoMigrate(
		&model.Profile{},
		&model.Company{},
		&model.Property{},
		&model.Promotion{},
		&model.Customer{},
		&model.Conversation{},
		&model.Participant{},
		&model.Message{},
		&model.SupportTicket{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return err
	}
	return nil
}

// createCustomIndexes creates indexes GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// Case-insensitive email lookups on profiles
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_profiles_email_lower ON profiles (lower(email))`).Error; err != nil {
		return err
	}

	// Last non-deleted message per conversation
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_messages_conversation_latest ON messages (conversation_id, created_at DESC) WHERE deleted = false`).Error; err != nil {
		return err
	}

	return nil
}
