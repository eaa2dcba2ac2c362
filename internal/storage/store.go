// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripwiser/internal/models"
)

// ErrNotFound is returned (wrapped) when a trip does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip snapshot storage.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the service layer.
//
// Trips are always written as complete snapshots; there are no partial updates.
// Implementations return copies, so callers may mutate what they get back.
type Store interface {
	// CreateTrip persists a new trip.
	// The trip.ID, CreatedAt and UpdatedAt fields are populated by the store when unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a full trip snapshot by its ID.
	// Returns an error wrapping ErrNotFound if the trip does not exist.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves every trip, most recently updated first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// SaveTrip replaces the stored snapshot with trip and stamps UpdatedAt.
	// Returns an error wrapping ErrNotFound if the trip does not exist.
	SaveTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and everything it owns.
	DeleteTrip(ctx context.Context, tripID string) error

	// Close releases any resources held by the store.
	Close() error
}
