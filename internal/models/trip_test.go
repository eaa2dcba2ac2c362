package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrip() *Trip {
	return &Trip{
		ID:          "trip-1",
		Destination: "Kyoto",
		Travelers: []Participant{
			{ID: "alice", DisplayName: "Alice"},
			{ID: "bob", DisplayName: "Bob"},
		},
		Expenses: []Expense{
			{
				ID:         "e1",
				Amount:     decimal.RequireFromString("42.10"),
				Category:   CategoryMeals,
				PayerID:    "alice",
				OccurredAt: time.Date(2024, 4, 2, 19, 0, 0, 0, time.UTC),
			},
		},
		Budget: CategoryBudget{CategoryMeals: decimal.NewFromInt(300)},
	}
}

func TestTripValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(trip *Trip)
		wantErr bool
	}{
		{name: "valid trip", mutate: func(*Trip) {}},
		{name: "missing destination", mutate: func(trip *Trip) { trip.Destination = "" }, wantErr: true},
		{
			name:    "duplicate traveler",
			mutate:  func(trip *Trip) { trip.Travelers = append(trip.Travelers, Participant{ID: "bob", DisplayName: "Robert"}) },
			wantErr: true,
		},
		{name: "payer not a traveler", mutate: func(trip *Trip) { trip.Expenses[0].PayerID = "carol" }, wantErr: true},
		{name: "zero amount", mutate: func(trip *Trip) { trip.Expenses[0].Amount = decimal.Zero }, wantErr: true},
		{name: "unknown category", mutate: func(trip *Trip) { trip.Expenses[0].Category = "Gifts" }, wantErr: true},
		{name: "missing date", mutate: func(trip *Trip) { trip.Expenses[0].OccurredAt = time.Time{} }, wantErr: true},
		{
			name:    "duplicate expense",
			mutate:  func(trip *Trip) { trip.Expenses = append(trip.Expenses, trip.Expenses[0]) },
			wantErr: true,
		},
		{
			name:    "negative budget",
			mutate:  func(trip *Trip) { trip.Budget[CategoryTransport] = decimal.NewFromInt(-1) },
			wantErr: true,
		},
		{
			name: "inverted dates",
			mutate: func(trip *Trip) {
				trip.Dates, _ = NewDateRange("2024-04-10", "2024-04-01")
			},
			wantErr: true,
		},
		{
			name: "only a start date",
			mutate: func(trip *Trip) {
				trip.Dates, _ = NewDateRange("2024-04-10", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(trip)
			err := trip.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTrip)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripCloneIsIndependent(t *testing.T) {
	original := validTrip()
	clone := original.Clone()

	clone.Travelers[0].DisplayName = "Alicia"
	clone.Expenses[0].Description = "changed"
	clone.Budget[CategoryMeals] = decimal.NewFromInt(1)
	require.NoError(t, clone.RemoveExpense("e1"))

	assert.Equal(t, "Alice", original.Travelers[0].DisplayName)
	assert.Len(t, original.Expenses, 1)
	assert.Empty(t, original.Expenses[0].Description)
	assert.True(t, original.Budget[CategoryMeals].Equal(decimal.NewFromInt(300)))
}

func TestTripExpenseEdits(t *testing.T) {
	trip := validTrip()

	edited := trip.Expenses[0]
	edited.Amount = decimal.NewFromInt(50)
	require.NoError(t, trip.ReplaceExpense(edited))
	assert.True(t, trip.TotalSpent().Equal(decimal.NewFromInt(50)))

	assert.ErrorIs(t, trip.ReplaceExpense(Expense{ID: "missing"}), ErrUnknownExpense)
	assert.ErrorIs(t, trip.RemoveExpense("missing"), ErrUnknownExpense)

	_, err := trip.Traveler("nobody")
	assert.ErrorIs(t, err, ErrUnknownTraveler)

	bob, err := trip.Traveler("bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.DisplayName)
}

func TestDateRange(t *testing.T) {
	r, err := NewDateRange("2024-04-01", "2024-04-03")
	require.NoError(t, err)
	assert.True(t, r.Complete())
	assert.True(t, r.Ordered())
	assert.Equal(t, "2024-04-01", r.StartString())
	assert.Equal(t, "2024-04-03", r.EndString())

	empty, err := NewDateRange("", "")
	require.NoError(t, err)
	assert.False(t, empty.Complete())
	assert.False(t, empty.Ordered())
	assert.Empty(t, empty.StartString())

	_, err = NewDateRange("04/01/2024", "")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Admission Fee")
	require.NoError(t, err)
	assert.Equal(t, CategoryAdmissionFee, c)

	c, err = ParseCategory("AdmissionFee")
	require.NoError(t, err)
	assert.Equal(t, CategoryAdmissionFee, c)

	_, err = ParseCategory("meals")
	assert.Error(t, err)
}
