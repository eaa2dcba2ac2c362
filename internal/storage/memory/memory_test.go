package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	trip := &models.Trip{
		Destination: "Porto",
		Travelers:   []models.Participant{{ID: "a", DisplayName: "Ana"}},
		Expenses: []models.Expense{{
			ID:         "e1",
			Amount:     decimal.NewFromInt(12),
			Category:   models.CategoryMeals,
			PayerID:    "a",
			OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}},
	}
	require.NoError(t, s.CreateTrip(ctx, trip))
	require.NotEmpty(t, trip.ID)
	assert.NotZero(t, trip.CreatedAt)

	// Mutating the caller's copy does not reach the store.
	trip.Travelers[0].DisplayName = "changed"

	got, err := s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Travelers[0].DisplayName)

	got.Destination = "Braga"
	require.NoError(t, s.SaveTrip(ctx, got))

	again, err := s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Braga", again.Destination)
	assert.Equal(t, trip.CreatedAt, again.CreatedAt)

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))
	_, err = s.GetTrip(ctx, trip.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreMissingTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	assert.ErrorIs(t, s.SaveTrip(ctx, &models.Trip{ID: "nope"}), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteTrip(ctx, "nope"), storage.ErrNotFound)
}

func TestStoreListTrips(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, s.CreateTrip(ctx, &models.Trip{ID: id, Destination: id}))
	}
	s.trips["a"].UpdatedAt = 5
	s.trips["b"].UpdatedAt = 5
	s.trips["c"].UpdatedAt = 1

	trips, err := s.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 3)

	var ids []string
	for _, trip := range trips {
		ids = append(ids, trip.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
