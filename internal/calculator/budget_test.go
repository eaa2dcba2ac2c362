package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/models"
)

func dateRange(t *testing.T, start, end string) models.DateRange {
	t.Helper()
	r, err := models.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestEvaluateBudgetMealsScenario(t *testing.T) {
	agg, err := Aggregate([]models.Expense{
		expense("e1", "A", "50", models.CategoryMeals, "2024-06-02"),
	})
	require.NoError(t, err)

	report := EvaluateBudget(
		models.CategoryBudget{models.CategoryMeals: dec("100")},
		dateRange(t, "2024-06-01", "2024-06-05"),
		agg,
	)

	assert.True(t, report.HasBudget)
	assertDecimal(t, "100", report.TotalBudget)
	assertDecimal(t, "50", report.OverallProgressPct)

	progress, ok := report.Progress(models.CategoryMeals)
	require.True(t, ok)
	assertDecimal(t, "50", progress)

	require.NotNil(t, report.TripDurationDays)
	assert.Equal(t, 5, *report.TripDurationDays)
	require.NotNil(t, report.DailyBudget)
	assertDecimal(t, "20", *report.DailyBudget)
}

func TestEvaluateBudgetCategories(t *testing.T) {
	agg, err := Aggregate([]models.Expense{
		expense("e1", "A", "30", models.CategoryMeals, "2024-06-01"),
		expense("e2", "A", "45", models.CategoryTransport, "2024-06-01"),
		expense("e3", "A", "10", models.CategoryOther, "2024-06-01"),
	})
	require.NoError(t, err)

	report := EvaluateBudget(models.CategoryBudget{
		models.CategoryOther:         dec("0"),
		models.CategoryTransport:     dec("30"),
		models.CategoryMeals:         dec("120"),
		models.CategoryAccommodation: dec("50"),
	}, models.DateRange{}, agg)

	assertDecimal(t, "200", report.TotalBudget)
	assertDecimal(t, "42.5", report.OverallProgressPct)

	// Zero-budget Other is absent, not zero; unspent Accommodation is present at 0%.
	require.Len(t, report.Categories, 3)
	assert.Equal(t, models.CategoryMeals, report.Categories[0].Category)
	assertDecimal(t, "25", report.Categories[0].ProgressPct)
	assert.Equal(t, models.CategoryTransport, report.Categories[1].Category)
	assertDecimal(t, "150", report.Categories[1].ProgressPct)
	assertDecimal(t, "45", report.Categories[1].Spent)
	assert.Equal(t, models.CategoryAccommodation, report.Categories[2].Category)
	assertDecimal(t, "0", report.Categories[2].ProgressPct)

	_, ok := report.Progress(models.CategoryOther)
	assert.False(t, ok)

	assert.Nil(t, report.TripDurationDays)
	assert.Nil(t, report.DailyBudget)
}

func TestEvaluateBudgetWithoutBudget(t *testing.T) {
	agg, err := Aggregate([]models.Expense{
		expense("e1", "A", "30", models.CategoryMeals, "2024-06-01"),
	})
	require.NoError(t, err)

	report := EvaluateBudget(nil, dateRange(t, "2024-06-01", "2024-06-03"), agg)

	assert.False(t, report.HasBudget)
	assertDecimal(t, "0", report.TotalBudget)
	assertDecimal(t, "0", report.OverallProgressPct)
	assert.Empty(t, report.Categories)
	require.NotNil(t, report.TripDurationDays)
	assert.Equal(t, 3, *report.TripDurationDays)
	assert.Nil(t, report.DailyBudget, "no daily budget without a total budget")
}

func TestTripDurationDays(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		want   int
		wantOK bool
	}{
		{name: "same day", start: "2024-06-01", end: "2024-06-01", want: 1, wantOK: true},
		{name: "five days", start: "2024-06-01", end: "2024-06-05", want: 5, wantOK: true},
		{name: "across month end", start: "2024-01-30", end: "2024-02-02", want: 4, wantOK: true},
		{name: "leap day", start: "2024-02-28", end: "2024-03-01", want: 3, wantOK: true},
		{name: "inverted", start: "2024-06-05", end: "2024-06-01"},
		{name: "missing end", start: "2024-06-01"},
		{name: "missing start", end: "2024-06-01"},
		{name: "missing both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TripDurationDays(dateRange(t, tt.start, tt.end))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEvaluateBudgetInvertedRange(t *testing.T) {
	agg, err := Aggregate(nil)
	require.NoError(t, err)

	report := EvaluateBudget(
		models.CategoryBudget{models.CategoryMeals: dec("100")},
		dateRange(t, "2024-06-05", "2024-06-01"),
		agg,
	)

	assert.True(t, report.HasBudget)
	assert.Nil(t, report.TripDurationDays)
	assert.Nil(t, report.DailyBudget)
}
