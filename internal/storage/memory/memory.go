// Package memory provides an in-memory implementation of the storage.Store interface.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps trip snapshots in a map. Snapshots are cloned on the way in and out.
type Store struct {
	mu    sync.RWMutex
	trips map[string]*models.Trip
}

func New() *Store {
	return &Store{trips: make(map[string]*models.Trip)}
}

// CreateTrip stores a copy of the trip, generating its ID and timestamps when unset.
func (s *Store) CreateTrip(_ context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if trip.CreatedAt == 0 {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.trips[trip.ID]; exists {
		return fmt.Errorf("trip already exists: %s", trip.ID)
	}
	s.trips[trip.ID] = trip.Clone()
	return nil
}

func (s *Store) GetTrip(_ context.Context, tripID string) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trip, ok := s.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return trip.Clone(), nil
}

func (s *Store) ListTrips(_ context.Context) ([]*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trips := make([]*models.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		trips = append(trips, trip.Clone())
	}
	slices.SortFunc(trips, func(a, b *models.Trip) int {
		if c := cmp.Compare(b.UpdatedAt, a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return trips, nil
}

// SaveTrip replaces the stored snapshot.
func (s *Store) SaveTrip(_ context.Context, trip *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.trips[trip.ID]
	if !ok {
		return fmt.Errorf("trip %s: %w", trip.ID, storage.ErrNotFound)
	}
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now().Unix()
	s.trips[trip.ID] = trip.Clone()
	return nil
}

func (s *Store) DeleteTrip(_ context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[tripID]; !ok {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	delete(s.trips, tripID)
	return nil
}

func (s *Store) Close() error {
	return nil
}
