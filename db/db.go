package db

import (
	"fmt"
	"os"
	"strings"

	"matrimony_server/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database described by dsn and runs auto-migration.
// A dsn starting with postgres:// selects the postgres driver; anything
// else is treated as a sqlite file path (or file: URI).
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the interest and email
// uniqueness guarantees depend on it.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var conn *gorm.DB
	var err error
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		conn, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates the schema for all models. Shared with tests
// so in-memory databases get the same constraints as production ones.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.User{}, &models.Interest{}, &models.Message{}); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
