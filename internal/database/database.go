package database

import (
	"fmt"
	"time"

	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the local console database. The console only stores its
// own audit trail and session state here; all document data lives in the
// external backend.
func NewDatabase(cfg *config.ConsoleDBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open console database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// sqlite handles one writer at a time
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping console database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs automatic migrations (for development only; production
// uses the goose migrations under migrations/)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.AuditLog{},
		&domain.Session{},
	)
}

// HealthCheck pings the console database
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Ping()
}
