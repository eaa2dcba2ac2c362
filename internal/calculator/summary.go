package calculator

import "github.com/mmynk/tripwiser/internal/models"

// Summary is everything the dashboard shows for one trip snapshot.
type Summary struct {
	Aggregates    *Aggregates
	Contributions []Contribution
	Budget        BudgetReport
	Settlement    *Settlement
	// Series is nil when the trip dates are incomplete or inverted.
	Series *Series
}

// Summarize runs every calculation over a single trip snapshot.
//
// A trip without travelers gets an empty settlement rather than an error, so a new
// trip can still show its budget.
func Summarize(trip *models.Trip) (*Summary, error) {
	agg, err := Aggregate(trip.Expenses)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Aggregates:    agg,
		Contributions: agg.Contributions(trip.Travelers),
		Budget:        EvaluateBudget(trip.Budget, trip.Dates, agg),
		Settlement:    &Settlement{},
	}

	if len(trip.Travelers) > 0 {
		settlement, err := Settle(trip.Expenses, trip.Travelers)
		if err != nil {
			return nil, err
		}
		summary.Settlement = settlement
	}

	if trip.Dates.Ordered() {
		series, err := BuildSeries(trip.Dates, agg, summary.Budget.DailyBudget)
		if err != nil {
			return nil, err
		}
		summary.Series = series
	}

	return summary, nil
}
