package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for trip dates and daily keys.
const DateLayout = "2006-01-02"

// CategoryBudget maps a category to its spending ceiling.
// A category that is absent (or zero) is unbudgeted.
type CategoryBudget map[Category]decimal.Decimal

// Clone returns an independent copy of the budget. A nil budget stays nil.
func (b CategoryBudget) Clone() CategoryBudget {
	if b == nil {
		return nil
	}
	out := make(CategoryBudget, len(b))
	for cat, amount := range b {
		out[cat] = amount
	}
	return out
}

// DateRange is the optional trip duration. A zero Start or End means the date is not set.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses YYYY-MM-DD dates. Empty strings leave the date unset.
func NewDateRange(start, end string) (DateRange, error) {
	var r DateRange
	var err error
	if start != "" {
		if r.Start, err = ParseDate(start); err != nil {
			return DateRange{}, fmt.Errorf("%w: invalid start date: %v", ErrInvalidTrip, err)
		}
	}
	if end != "" {
		if r.End, err = ParseDate(end); err != nil {
			return DateRange{}, fmt.Errorf("%w: invalid end date: %v", ErrInvalidTrip, err)
		}
	}
	return r, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Complete reports whether both dates are set.
func (r DateRange) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Ordered reports whether both dates are set and Start is not after End,
// comparing calendar dates only.
func (r DateRange) Ordered() bool {
	if !r.Complete() {
		return false
	}
	return !CivilDate(r.Start).After(CivilDate(r.End))
}

// StartString returns the start date as YYYY-MM-DD, or "" when unset.
func (r DateRange) StartString() string {
	return formatOptionalDate(r.Start)
}

// EndString returns the end date as YYYY-MM-DD, or "" when unset.
func (r DateRange) EndString() string {
	return formatOptionalDate(r.End)
}

// CivilDate drops the time of day and zone, keeping the calendar date as seen in t's zone.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatOptionalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
