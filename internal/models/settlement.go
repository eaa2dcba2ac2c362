package models

import "github.com/shopspring/decimal"

// Balance is one traveler's position after the equal split.
// Derived on every read, never persisted.
type Balance struct {
	// ParticipantID is the traveler this balance belongs to.
	ParticipantID string

	// DisplayName is the traveler's name at the time of calculation.
	DisplayName string

	// Paid is the total this traveler paid across all expenses.
	Paid decimal.Decimal

	// Net is Paid minus the traveler's equal share.
	// Positive = is owed money, Negative = owes money.
	Net decimal.Decimal
}

// Transaction is a single transfer in a settlement plan.
type Transaction struct {
	// FromParticipantID is the traveler who pays (debtor settling up).
	FromParticipantID string

	// ToParticipantID is the traveler who receives (creditor being paid).
	ToParticipantID string

	// Amount is the transfer amount, always greater than zero.
	Amount decimal.Decimal
}
