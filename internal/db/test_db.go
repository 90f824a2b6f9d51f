package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestStores creates an in-memory SQLite bundle for testing. All
// three logical stores share one connection, which is fine: table names
// never collide across stores.
func SetupTestStores() (*Stores, error) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	stores := &Stores{
		Registrations: conn,
		Users:         conn,
		Announcements: conn,
	}
	if err := stores.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return stores, nil
}

// CleanupTestStores closes the test bundle.
func CleanupTestStores(s *Stores) {
	sqlDB, err := s.Registrations.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data so cases can share a bundle.
func TruncateAllTables(s *Stores) error {
	tables := []string{
		"seller_applications", "delivery_agent_applications",
		"principals", "sellers", "delivery_agents",
		"announcements", "chat_messages",
	}
	for _, table := range tables {
		if err := s.Registrations.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
