package store

import (
	"gorm.io/gorm"
)

// Store is the data-access handle for tasks and users. It wraps a gorm
// connection and is passed explicitly to every handler that needs it.
type Store struct {
	db *gorm.DB
}

// New creates a Store around an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
