package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func assertNear(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Sub(got).Abs().LessThanOrEqual(Epsilon), "want ~%s, got %s", want, got.String())
}

func expense(id, payer, amount string, cat models.Category, day string) models.Expense {
	at, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
	if err != nil {
		panic(err)
	}
	return models.Expense{
		ID:          id,
		Description: id,
		Amount:      dec(amount),
		Category:    cat,
		PayerID:     payer,
		OccurredAt:  at,
	}
}

func travelers(ids ...string) []models.Participant {
	out := make([]models.Participant, len(ids))
	for i, id := range ids {
		out[i] = models.Participant{ID: id, DisplayName: "Traveler " + id}
	}
	return out
}

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants int
		want         string
		wantErr      error
	}{
		{name: "three people even split", total: "120", participants: 3, want: "40"},
		{name: "single participant owes everything", total: "75.50", participants: 1, want: "75.5"},
		{name: "nothing spent", total: "0", participants: 4, want: "0"},
		{name: "no participants should error", total: "10", participants: 0, wantErr: ErrNoParticipants},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, err := EqualShare(dec(tt.total), tt.participants)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.want, share)
		})
	}
}

func TestEqualShareRepeatingDecimal(t *testing.T) {
	share, err := EqualShare(dec("100"), 3)
	require.NoError(t, err)
	assertNear(t, "33.33", share)
	// Three shares add back up to the total within tolerance.
	assertNear(t, "100", share.Mul(decimal.NewFromInt(3)))
}
