package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTrip     = errors.New("invalid trip")
	ErrUnknownTraveler = errors.New("traveler not found")
	ErrUnknownExpense  = errors.New("expense not found")
)

// Trip is a complete snapshot of one trip.
// Storage always reads and writes a Trip as a whole.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Destination is the display name of the trip (e.g., "Lisbon").
	Destination string

	// Travelers lists the people sharing costs, in the order they were added.
	// This order is the tie-break order for settlement.
	Travelers []Participant

	// Expenses are all expenses logged for the trip.
	Expenses []Expense

	// Budget is the optional per-category budget.
	Budget CategoryBudget

	// Dates is the optional trip duration.
	Dates DateRange

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last snapshot write.
	UpdatedAt int64
}

// Clone returns a deep copy of the trip so the caller can mutate it freely.
func (t *Trip) Clone() *Trip {
	out := *t
	out.Travelers = append([]Participant(nil), t.Travelers...)
	out.Expenses = append([]Expense(nil), t.Expenses...)
	out.Budget = t.Budget.Clone()
	return &out
}

// Traveler returns the traveler with the given ID.
func (t *Trip) Traveler(id string) (*Participant, error) {
	for i := range t.Travelers {
		if t.Travelers[i].ID == id {
			return &t.Travelers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTraveler, id)
}

// ReplaceExpense swaps in e for the expense with the same ID.
func (t *Trip) ReplaceExpense(e Expense) error {
	for i := range t.Expenses {
		if t.Expenses[i].ID == e.ID {
			t.Expenses[i] = e
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownExpense, e.ID)
}

// RemoveExpense deletes the expense with the given ID.
func (t *Trip) RemoveExpense(id string) error {
	for i := range t.Expenses {
		if t.Expenses[i].ID == id {
			t.Expenses = append(t.Expenses[:i], t.Expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownExpense, id)
}

// TotalSpent returns the sum of all expense amounts.
func (t *Trip) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Validate checks the snapshot invariants the user-facing forms enforce:
// unique traveler and expense IDs, positive amounts, known categories,
// payers that are travelers, non-negative budgets and an ordered date range.
func (t *Trip) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("%w: destination required", ErrInvalidTrip)
	}

	travelers := make(map[string]bool, len(t.Travelers))
	for _, p := range t.Travelers {
		if p.ID == "" || p.DisplayName == "" {
			return fmt.Errorf("%w: traveler id and name required", ErrInvalidTrip)
		}
		if travelers[p.ID] {
			return fmt.Errorf("%w: duplicate traveler id %s", ErrInvalidTrip, p.ID)
		}
		travelers[p.ID] = true
	}

	expenses := make(map[string]bool, len(t.Expenses))
	for _, e := range t.Expenses {
		if e.ID == "" {
			return fmt.Errorf("%w: expense id required", ErrInvalidTrip)
		}
		if expenses[e.ID] {
			return fmt.Errorf("%w: duplicate expense id %s", ErrInvalidTrip, e.ID)
		}
		expenses[e.ID] = true
		if err := ValidateExpense(e, travelers); err != nil {
			return err
		}
	}

	for cat, amount := range t.Budget {
		if !cat.Valid() {
			return fmt.Errorf("%w: unknown budget category %q", ErrInvalidTrip, cat)
		}
		if amount.IsNegative() {
			return fmt.Errorf("%w: budget for %s must not be negative", ErrInvalidTrip, cat)
		}
	}

	if t.Dates.Complete() && !t.Dates.Ordered() {
		return fmt.Errorf("%w: end date cannot be before start date", ErrInvalidTrip)
	}
	return nil
}

// ValidateExpense checks a single expense against the set of traveler IDs.
func ValidateExpense(e Expense, travelers map[string]bool) error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: expense %s amount must be greater than zero", ErrInvalidTrip, e.ID)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: expense %s has unknown category %q", ErrInvalidTrip, e.ID, e.Category)
	}
	if !travelers[e.PayerID] {
		return fmt.Errorf("%w: payer '%s' must be one of the travelers", ErrInvalidTrip, e.PayerID)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("%w: expense %s date required", ErrInvalidTrip, e.ID)
	}
	return nil
}
