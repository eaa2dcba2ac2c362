package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

// MaxSeriesDays caps the dense series; longer ranges are truncated.
const MaxSeriesDays = 365

// DailyEntry is one day of spend.
type DailyEntry struct {
	// Date is the calendar day as YYYY-MM-DD.
	Date string
	// Budget is the daily budget, nil when not applicable.
	Budget *decimal.Decimal
	// ByCategory has an entry for every category, zero when nothing was spent.
	ByCategory map[models.Category]decimal.Decimal
	Total      decimal.Decimal
}

// Series is a dense day-by-day timeline over a date range.
type Series struct {
	Days []DailyEntry
	// Truncated is set when the range was longer than MaxSeriesDays.
	Truncated bool
}

// BuildSeries produces one entry per calendar day from the range start to its end,
// inclusive, merging the per-day aggregates and zero-filling the gaps.
func BuildSeries(dates models.DateRange, agg *Aggregates, dailyBudget *decimal.Decimal) (*Series, error) {
	if !dates.Ordered() {
		return nil, ErrInvalidDateRange
	}

	end := models.CivilDate(dates.End)
	day := models.CivilDate(dates.Start)
	series := &Series{}
	for !day.After(end) {
		if len(series.Days) == MaxSeriesDays {
			series.Truncated = true
			break
		}
		series.Days = append(series.Days, newDailyEntry(day.Format(models.DateLayout), agg, dailyBudget))
		day = day.AddDate(0, 0, 1)
	}
	return series, nil
}

// DailySpend returns only the days that have spend, sorted by date, without a budget.
func DailySpend(agg *Aggregates) []DailyEntry {
	days := agg.Days()
	entries := make([]DailyEntry, len(days))
	for i, day := range days {
		entries[i] = newDailyEntry(day, agg, nil)
	}
	return entries
}

func newDailyEntry(day string, agg *Aggregates, dailyBudget *decimal.Decimal) DailyEntry {
	entry := DailyEntry{
		Date:       day,
		ByCategory: make(map[models.Category]decimal.Decimal, len(models.Categories)),
		Total:      decimal.Zero,
	}
	if dailyBudget != nil {
		budget := *dailyBudget
		entry.Budget = &budget
	}
	spent := agg.ByDate[day]
	for _, cat := range models.Categories {
		amount := spent[cat]
		entry.ByCategory[cat] = amount
		entry.Total = entry.Total.Add(amount)
	}
	return entry
}
