// Package store isolates all query construction behind typed CRUD and
// filtered-read operations, one method set per entity. Handlers and
// guards never touch gorm directly.
package store

import (
	"time"

	"gorm.io/gorm"
)

// Store wraps the database handle for all record operations.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// New creates a Store backed by the given database.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// SetClock overrides the time source. Tests use this to pin the
// upcoming-appointment boundary.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
