package db

import (
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/pkg/logger"
)

// Migrate runs schema migrations on every store. Each store only carries
// the tables that belong to it.
func (s *Stores) Migrate() error {
	logger.Info("Running database migrations...")

	if err := s.Registrations.AutoMigrate(
		&model.SellerApplication{},
		&model.DeliveryAgentApplication{},
	); err != nil {
		logger.Error("Failed to migrate registrations store", err)
		return err
	}

	if err := s.Users.AutoMigrate(
		&model.Principal{},
		&model.LiveSeller{},
		&model.LiveDeliveryAgent{},
	); err != nil {
		logger.Error("Failed to migrate users store", err)
		return err
	}

	if err := s.Announcements.AutoMigrate(
		&model.Announcement{},
		&model.ChatMessage{},
	); err != nil {
		logger.Error("Failed to migrate announcements store", err)
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
