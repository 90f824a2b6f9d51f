package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshkart/freshkart-backend/config"
	appLogger "github.com/freshkart/freshkart-backend/pkg/logger"
)

// Stores bundles the three logical databases the portal talks to.
// Registrations holds in-flight applications, Users holds live accounts
// and portal principals, Announcements holds the board and chat history.
// They may point at the same physical server with different database
// names, or at three separate servers.
type Stores struct {
	Registrations *gorm.DB
	Users         *gorm.DB
	Announcements *gorm.DB
}

// Connect opens all three stores. It fails fast: if any store is
// unreachable the ones already opened are closed and the error returned.
func Connect(cfg *config.StoresConfig) (*Stores, error) {
	stores := &Stores{}

	var err error
	if stores.Registrations, err = open("registrations", &cfg.Registrations); err != nil {
		return nil, err
	}
	if stores.Users, err = open("users", &cfg.Users); err != nil {
		stores.Close()
		return nil, err
	}
	if stores.Announcements, err = open("announcements", &cfg.Announcements); err != nil {
		stores.Close()
		return nil, err
	}

	return stores, nil
}

func open(name string, cfg *config.DatabaseConfig) (*gorm.DB, error) {
	appLogger.Info("Connecting to store", map[string]interface{}{
		"store":    name,
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"user":     cfg.User,
	})

	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // request logging is handled by middleware
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s store: %w", name, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s store instance: %w", name, err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	appLogger.Info("Store connection established", map[string]interface{}{
		"store": name,
	})
	return conn, nil
}

// Close closes every open store connection. Safe to call on a partially
// connected bundle.
func (s *Stores) Close() error {
	var firstErr error
	for _, conn := range []*gorm.DB{s.Registrations, s.Users, s.Announcements} {
		if conn == nil {
			continue
		}
		sqlDB, err := conn.DB()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
