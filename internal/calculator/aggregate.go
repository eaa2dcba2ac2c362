package calculator

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// Aggregates holds expense totals grouped by category, payer and day.
// Categories and payers without spend are omitted from the maps.
type Aggregates struct {
	ByCategory map[models.Category]decimal.Decimal
	ByPayer    map[string]decimal.Decimal
	// ByDate is keyed by YYYY-MM-DD in each expense's own zone.
	ByDate     map[string]map[models.Category]decimal.Decimal
	GrandTotal decimal.Decimal
}

// CategoryShare is a category's part of the grand total.
type CategoryShare struct {
	Category models.Category
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Contribution is the total one participant paid.
type Contribution struct {
	ParticipantID string
	DisplayName   string
	Paid          decimal.Decimal
}

// Aggregate sums expenses by category, payer and day.
//
// Zero amounts contribute nothing. Decimal addition is exact, so the result does not
// depend on input order.
func Aggregate(expenses []models.Expense) (*Aggregates, error) {
	agg := &Aggregates{
		ByCategory: make(map[models.Category]decimal.Decimal),
		ByPayer:    make(map[string]decimal.Decimal),
		ByDate:     make(map[string]map[models.Category]decimal.Decimal),
		GrandTotal: decimal.Zero,
	}

	for _, e := range expenses {
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("expense %s: %w", e.ID, ErrNegativeAmount)
		}
		if !e.Category.Valid() {
			return nil, fmt.Errorf("expense %s: %w: %q", e.ID, ErrUnknownCategory, e.Category)
		}
		if e.Amount.IsZero() {
			continue
		}

		agg.GrandTotal = agg.GrandTotal.Add(e.Amount)
		agg.ByCategory[e.Category] = agg.ByCategory[e.Category].Add(e.Amount)
		agg.ByPayer[e.PayerID] = agg.ByPayer[e.PayerID].Add(e.Amount)

		day := e.Day()
		if _, exists := agg.ByDate[day]; !exists {
			agg.ByDate[day] = make(map[models.Category]decimal.Decimal)
		}
		agg.ByDate[day][e.Category] = agg.ByDate[day][e.Category].Add(e.Amount)
	}

	return agg, nil
}

// CategoryShares returns each spent category's percentage of the grand total,
// in display order. Empty when nothing was spent.
func (a *Aggregates) CategoryShares() []CategoryShare {
	if !a.GrandTotal.IsPositive() {
		return nil
	}
	var shares []CategoryShare
	for _, cat := range models.Categories {
		amount, ok := a.ByCategory[cat]
		if !ok {
			continue
		}
		shares = append(shares, CategoryShare{
			Category: cat,
			Amount:   amount,
			Percent:  amount.Div(a.GrandTotal).Mul(hundred),
		})
	}
	return shares
}

// Contributions returns what each participant paid, in participant order.
// Participants who paid nothing are listed with zero.
func (a *Aggregates) Contributions(participants []models.Participant) []Contribution {
	out := make([]Contribution, len(participants))
	for i, p := range participants {
		out[i] = Contribution{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
			Paid:          a.ByPayer[p.ID],
		}
	}
	return out
}

// Days returns the days that have spend, sorted ascending.
func (a *Aggregates) Days() []string {
	days := make([]string, 0, len(a.ByDate))
	for day := range a.ByDate {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

// DayTotal returns the total spent on a day across all categories.
func (a *Aggregates) DayTotal(day string) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a.ByDate[day] {
		total = total.Add(amount)
	}
	return total
}
