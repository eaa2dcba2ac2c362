package calculator

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
)

func TestSettleThreeTravelers(t *testing.T) {
	// Total = 120, share = 40: A = +50, B = -40, C = -10.
	expenses := []models.Expense{
		expense("e1", "A", "90", models.CategoryMeals, "2024-06-01"),
		expense("e2", "C", "30", models.CategoryTransport, "2024-06-02"),
	}

	result, err := Settle(expenses, travelers("A", "B", "C"))
	require.NoError(t, err)

	require.Len(t, result.Balances, 3)
	assert.Equal(t, "A", result.Balances[0].ParticipantID)
	assertDecimal(t, "50", result.Balances[0].Net)
	assertDecimal(t, "90", result.Balances[0].Paid)
	assertDecimal(t, "-40", result.Balances[1].Net)
	assertDecimal(t, "0", result.Balances[1].Paid)
	assertDecimal(t, "-10", result.Balances[2].Net)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "B", result.Transactions[0].FromParticipantID)
	assert.Equal(t, "A", result.Transactions[0].ToParticipantID)
	assertDecimal(t, "40", result.Transactions[0].Amount)
	assert.Equal(t, "C", result.Transactions[1].FromParticipantID)
	assert.Equal(t, "A", result.Transactions[1].ToParticipantID)
	assertDecimal(t, "10", result.Transactions[1].Amount)
}

func TestSettleEdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []models.Expense
		participants []models.Participant
		wantErr      error
		wantTxns     int
	}{
		{
			name:         "empty expense list",
			participants: travelers("A", "B", "C"),
			wantTxns:     0,
		},
		{
			name: "single participant",
			expenses: []models.Expense{
				expense("e1", "A", "250", models.CategoryAccommodation, "2024-06-01"),
			},
			participants: travelers("A"),
			wantTxns:     0,
		},
		{
			name: "everyone paid the same",
			expenses: []models.Expense{
				expense("e1", "A", "20", models.CategoryMeals, "2024-06-01"),
				expense("e2", "B", "20", models.CategoryMeals, "2024-06-01"),
			},
			participants: travelers("A", "B"),
			wantTxns:     0,
		},
		{
			name: "zero amount expense is a no-op",
			expenses: []models.Expense{
				expense("e1", "A", "0", models.CategoryOther, "2024-06-01"),
			},
			participants: travelers("A", "B"),
			wantTxns:     0,
		},
		{
			name: "imbalance below a cent is settled",
			expenses: []models.Expense{
				expense("e1", "A", "10.01", models.CategoryMeals, "2024-06-01"),
				expense("e2", "B", "10.00", models.CategoryMeals, "2024-06-01"),
			},
			participants: travelers("A", "B"),
			wantTxns:     0,
		},
		{
			name:     "no participants should error",
			expenses: []models.Expense{expense("e1", "A", "10", models.CategoryMeals, "2024-06-01")},
			wantErr:  ErrNoParticipants,
		},
		{
			name:         "payer outside participant set should error",
			expenses:     []models.Expense{expense("e1", "Z", "10", models.CategoryMeals, "2024-06-01")},
			participants: travelers("A", "B"),
			wantErr:      ErrUnknownPayer,
		},
		{
			name:         "unknown payer on a zero expense still errors",
			expenses:     []models.Expense{expense("e1", "Z", "0", models.CategoryMeals, "2024-06-01")},
			participants: travelers("A"),
			wantErr:      ErrUnknownPayer,
		},
		{
			name:         "negative amount should error",
			expenses:     []models.Expense{expense("e1", "A", "-5", models.CategoryMeals, "2024-06-01")},
			participants: travelers("A", "B"),
			wantErr:      ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Settle(tt.expenses, tt.participants)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result.Transactions, tt.wantTxns)
			assert.Len(t, result.Balances, len(tt.participants))
		})
	}
}

func TestSettleSingleParticipantBalanceIsZero(t *testing.T) {
	result, err := Settle([]models.Expense{
		expense("e1", "A", "99.99", models.CategoryMeals, "2024-06-01"),
		expense("e2", "A", "0.01", models.CategoryOther, "2024-06-03"),
	}, travelers("A"))
	require.NoError(t, err)
	assertDecimal(t, "0", result.Balances[0].Net)
	assertDecimal(t, "100", result.Balances[0].Paid)
}

func TestSettleTieBreakKeepsParticipantOrder(t *testing.T) {
	// B and C owe the same; B comes first in the traveler list so B pays first.
	// A and D are owed the same; A is matched first.
	expenses := []models.Expense{
		expense("e1", "A", "60", models.CategoryMeals, "2024-06-01"),
		expense("e2", "D", "60", models.CategoryMeals, "2024-06-01"),
	}

	result, err := Settle(expenses, travelers("A", "B", "C", "D"))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, models.Transaction{FromParticipantID: "B", ToParticipantID: "A", Amount: result.Transactions[0].Amount}, result.Transactions[0])
	assert.Equal(t, models.Transaction{FromParticipantID: "C", ToParticipantID: "D", Amount: result.Transactions[1].Amount}, result.Transactions[1])
	assertDecimal(t, "30", result.Transactions[0].Amount)
	assertDecimal(t, "30", result.Transactions[1].Amount)
}

func TestSettleRepeatingShare(t *testing.T) {
	result, err := Settle([]models.Expense{
		expense("e1", "A", "100", models.CategoryMeals, "2024-06-01"),
	}, travelers("A", "B", "C"))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	for _, txn := range result.Transactions {
		assert.Equal(t, "A", txn.ToParticipantID)
		assertNear(t, "33.33", txn.Amount)
	}
}

func TestSettleDoesNotMutateDisplayBalances(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", "A", "90", models.CategoryMeals, "2024-06-01"),
		expense("e2", "C", "30", models.CategoryMeals, "2024-06-01"),
	}

	result, err := Settle(expenses, travelers("A", "B", "C"))
	require.NoError(t, err)

	// After matching, the working ledger is fully consumed but display balances remain.
	assertDecimal(t, "50", result.Balances[0].Net)
	assertDecimal(t, "-40", result.Balances[1].Net)
	assertDecimal(t, "-10", result.Balances[2].Net)
}

func TestSettleIsDeterministic(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", "A", "12.34", models.CategoryMeals, "2024-06-01"),
		expense("e2", "B", "56.78", models.CategoryTransport, "2024-06-01"),
		expense("e3", "C", "9.10", models.CategoryOther, "2024-06-02"),
		expense("e4", "C", "40", models.CategoryOther, "2024-06-02"),
	}
	participants := travelers("A", "B", "C", "D", "E")

	first, err := Settle(expenses, participants)
	require.NoError(t, err)
	second, err := Settle(expenses, participants)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSettleProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	categories := models.Categories

	for run := 0; run < 200; run++ {
		n := 1 + rng.IntN(6)
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}
		participants := travelers(ids...)

		var expenses []models.Expense
		for k := 0; k < rng.IntN(12); k++ {
			expenses = append(expenses, models.Expense{
				ID:         fmt.Sprintf("e%d", k),
				Amount:     decimal.NewFromInt(int64(rng.IntN(500))),
				Category:   categories[rng.IntN(len(categories))],
				PayerID:    ids[rng.IntN(n)],
				OccurredAt: time.Date(2024, 6, 1+rng.IntN(10), 9, 0, 0, 0, time.UTC),
			})
		}

		t.Run(fmt.Sprintf("run %d with %d travelers", run, n), func(t *testing.T) {
			result, err := Settle(expenses, participants)
			require.NoError(t, err)

			// Zero-sum balances.
			sum := decimal.Zero
			for _, b := range result.Balances {
				sum = sum.Add(b.Net)
			}
			assert.True(t, settled(sum), "balances sum to %s", sum)

			// Transaction bound and positivity.
			assert.LessOrEqual(t, len(result.Transactions), n-1)
			transferred := decimal.Zero
			for _, txn := range result.Transactions {
				assert.True(t, txn.Amount.IsPositive(), "non-positive transfer %s", txn.Amount)
				transferred = transferred.Add(txn.Amount)
			}

			// Transfers cover exactly the positive balances.
			owed := decimal.Zero
			for _, b := range result.Balances {
				if b.Net.IsPositive() {
					owed = owed.Add(b.Net)
				}
			}
			assert.True(t, settled(owed.Sub(transferred)), "owed %s, transferred %s", owed, transferred)

			// Replaying the plan drives every balance to zero.
			ledger := make(map[string]decimal.Decimal, n)
			for _, b := range result.Balances {
				ledger[b.ParticipantID] = b.Net
			}
			for _, txn := range result.Transactions {
				ledger[txn.FromParticipantID] = ledger[txn.FromParticipantID].Add(txn.Amount)
				ledger[txn.ToParticipantID] = ledger[txn.ToParticipantID].Sub(txn.Amount)
			}
			for id, remaining := range ledger {
				assert.True(t, settled(remaining), "%s left with %s", id, remaining)
			}
		})
	}
}

func TestSettleTotalsRejectsUnknownPayer(t *testing.T) {
	_, err := SettleTotals(map[string]decimal.Decimal{"ghost": dec("5")}, dec("5"), travelers("A"))
	require.ErrorIs(t, err, ErrUnknownPayer)
}

func TestSettlementBalanceLookup(t *testing.T) {
	result, err := Settle(nil, travelers("A", "B"))
	require.NoError(t, err)

	b, ok := result.Balance("B")
	require.True(t, ok)
	assertDecimal(t, "0", b.Net)

	_, ok = result.Balance("missing")
	assert.False(t, ok)
}
