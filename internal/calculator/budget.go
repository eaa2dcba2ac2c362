package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// CategoryProgress is spend against one budgeted category.
type CategoryProgress struct {
	Category    models.Category
	Spent       decimal.Decimal
	Budget      decimal.Decimal
	ProgressPct decimal.Decimal
}

// BudgetReport holds the budget figures for a trip.
//
// Duration-dependent figures are nil when the date range is missing or inverted;
// nil means "not applicable" and is distinct from zero.
type BudgetReport struct {
	TotalBudget decimal.Decimal
	// HasBudget is false when no category has a positive budget.
	HasBudget          bool
	OverallProgressPct decimal.Decimal
	// Categories lists only categories with a positive budget, in display order.
	Categories       []CategoryProgress
	TripDurationDays *int
	DailyBudget      *decimal.Decimal
}

// EvaluateBudget computes budget totals, progress ratios and the daily budget.
// It never fails; figures that cannot be computed are left nil.
func EvaluateBudget(budget models.CategoryBudget, dates models.DateRange, agg *Aggregates) BudgetReport {
	report := BudgetReport{
		TotalBudget:        decimal.Zero,
		OverallProgressPct: decimal.Zero,
	}

	for _, cat := range models.Categories {
		amount, ok := budget[cat]
		if !ok {
			continue
		}
		report.TotalBudget = report.TotalBudget.Add(amount)
		if !amount.IsPositive() {
			continue
		}
		spent := agg.ByCategory[cat]
		report.Categories = append(report.Categories, CategoryProgress{
			Category:    cat,
			Spent:       spent,
			Budget:      amount,
			ProgressPct: spent.Div(amount).Mul(hundred),
		})
	}

	report.HasBudget = report.TotalBudget.IsPositive()
	if report.HasBudget {
		report.OverallProgressPct = agg.GrandTotal.Div(report.TotalBudget).Mul(hundred)
	}

	if days, ok := TripDurationDays(dates); ok {
		report.TripDurationDays = &days
		if report.HasBudget {
			daily := report.TotalBudget.Div(decimal.NewFromInt(int64(days)))
			report.DailyBudget = &daily
		}
	}

	return report
}

// Progress returns the progress percentage for a category, and false when the
// category has no positive budget.
func (r BudgetReport) Progress(cat models.Category) (decimal.Decimal, bool) {
	for _, p := range r.Categories {
		if p.Category == cat {
			return p.ProgressPct, true
		}
	}
	return decimal.Zero, false
}

// TripDurationDays returns the inclusive number of calendar days in the range.
// It returns false when either date is missing or the start is after the end.
func TripDurationDays(dates models.DateRange) (int, bool) {
	if !dates.Ordered() {
		return 0, false
	}
	diff := models.CivilDate(dates.End).Sub(models.CivilDate(dates.Start))
	return int(diff/(24*time.Hour)) + 1, true
}
