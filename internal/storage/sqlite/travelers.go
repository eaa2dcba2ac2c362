package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/tripwiser/internal/models"
)

func insertTravelers(ctx context.Context, q querier, tripID string, travelers []models.Participant) error {
	for i, p := range travelers {
		_, err := q.ExecContext(ctx,
			"INSERT INTO travelers (trip_id, id, name, position) VALUES (?, ?, ?, ?)",
			tripID, p.ID, p.DisplayName, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert traveler: %w", err)
		}
	}
	return nil
}

// loadTravelers returns travelers in the order they were added.
func loadTravelers(ctx context.Context, q querier, tripID string) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, name FROM travelers WHERE trip_id = ? ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get travelers: %w", err)
	}
	defer rows.Close()

	var travelers []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan traveler: %w", err)
		}
		travelers = append(travelers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate travelers: %w", err)
	}
	return travelers, nil
}
