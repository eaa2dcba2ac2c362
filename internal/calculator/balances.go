package calculator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// Settlement is the result of settling a trip: every participant's balance and
// the ordered transfers that clear them.
type Settlement struct {
	// Balances are in participant order and are never touched by the matching loop.
	Balances     []models.Balance
	Transactions []models.Transaction
}

// ledgerEntry is a working copy of a balance consumed during matching.
type ledgerEntry struct {
	participantID string
	remaining     decimal.Decimal // always positive: amount still owed or still due
}

// Settle computes balances and a settlement plan for the given expenses.
// Every expense payer must be one of the participants.
func Settle(expenses []models.Expense, participants []models.Participant) (*Settlement, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	index := models.ParticipantIndex(participants)
	for _, e := range expenses {
		if _, ok := index[e.PayerID]; !ok {
			return nil, fmt.Errorf("expense %s: %w: %s", e.ID, ErrUnknownPayer, e.PayerID)
		}
	}

	agg, err := Aggregate(expenses)
	if err != nil {
		return nil, err
	}
	return SettleTotals(agg.ByPayer, agg.GrandTotal, participants)
}

// SettleTotals computes balances and a settlement plan from per-payer totals.
//
// Algorithm:
//   - share = grandTotal / len(participants)
//   - balance = paid - share for every participant
//   - debtors (balance < -ε) sorted most negative first, creditors (balance > ε)
//     sorted most positive first; both sorts are stable so ties keep participant order
//   - greedy matching: the current debtor pays the current creditor
//     min(debt, credit); a party within ε of zero is advanced past
//
// The plan has at most len(participants)-1 transfers. It is not guaranteed to be the
// minimum-cardinality plan.
func SettleTotals(byPayer map[string]decimal.Decimal, grandTotal decimal.Decimal, participants []models.Participant) (*Settlement, error) {
	share, err := EqualShare(grandTotal, len(participants))
	if err != nil {
		return nil, err
	}

	index := models.ParticipantIndex(participants)
	for _, payer := range slices.Sorted(maps.Keys(byPayer)) {
		if _, ok := index[payer]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPayer, payer)
		}
	}

	// Display balances, kept separate from the working ledger below.
	balances := make([]models.Balance, len(participants))
	for i, p := range participants {
		paid := byPayer[p.ID]
		balances[i] = models.Balance{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
			Paid:          paid,
			Net:           paid.Sub(share),
		}
	}

	var debtors, creditors []ledgerEntry
	for _, b := range balances {
		switch {
		case b.Net.LessThan(Epsilon.Neg()):
			debtors = append(debtors, ledgerEntry{participantID: b.ParticipantID, remaining: b.Net.Neg()})
		case b.Net.GreaterThan(Epsilon):
			creditors = append(creditors, ledgerEntry{participantID: b.ParticipantID, remaining: b.Net})
		}
	}

	// Largest debt and largest credit first.
	slices.SortStableFunc(debtors, func(a, b ledgerEntry) int { return b.remaining.Cmp(a.remaining) })
	slices.SortStableFunc(creditors, func(a, b ledgerEntry) int { return b.remaining.Cmp(a.remaining) })

	var transactions []models.Transaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		transactions = append(transactions, models.Transaction{
			FromParticipantID: debtor.participantID,
			ToParticipantID:   creditor.participantID,
			Amount:            amount,
		})

		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if settled(debtor.remaining) {
			i++
		}
		if settled(creditor.remaining) {
			j++
		}
	}

	return &Settlement{Balances: balances, Transactions: transactions}, nil
}

// Balance returns the balance for a participant.
func (s *Settlement) Balance(participantID string) (models.Balance, bool) {
	for _, b := range s.Balances {
		if b.ParticipantID == participantID {
			return b, true
		}
	}
	return models.Balance{}, false
}
