package database

import (
	"fmt"
	"taskboard/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database file (created on first run) and runs
// migrations. Using glebarez/sqlite which is a pure Go implementation (no CGO
// required). The returned handle is passed explicitly to the store; there is
// no package-level connection.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the users and tasks tables if they don't exist. Safe to
// call on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
