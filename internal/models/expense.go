package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense.
type Category string

const (
	CategoryMeals         Category = "Meals"
	CategoryTransport     Category = "Transport"
	CategoryAccommodation Category = "Accommodation"
	CategoryAdmissionFee  Category = "Admission Fee"
	CategoryOther         Category = "Other"
)

// Categories lists every category in display order.
// Any ordered output keyed by category follows this order.
var Categories = []Category{
	CategoryMeals,
	CategoryTransport,
	CategoryAccommodation,
	CategoryAdmissionFee,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a category by display name, case-sensitively,
// plus "AdmissionFee" as an alias for "Admission Fee".
func ParseCategory(s string) (Category, error) {
	if s == "AdmissionFee" {
		return CategoryAdmissionFee, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidTrip, s)
	}
	return c, nil
}

// Expense represents a single payment made by one traveler on behalf of the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is the name of the expense (e.g., "Dinner", "Museum tickets").
	Description string

	// Amount is the amount paid. Zero is tolerated and contributes nothing.
	Amount decimal.Decimal

	// Category is the expense category.
	Category Category

	// PayerID is the ID of the traveler who paid.
	PayerID string

	// OccurredAt is when the expense happened, in the zone it was recorded in.
	// Daily grouping truncates in this zone, never the viewer's.
	OccurredAt time.Time

	// Location is an optional free-form place name.
	Location string

	// ReceiptRef is an optional reference to a stored receipt image.
	ReceiptRef string
}

// Day returns the calendar day of the expense as YYYY-MM-DD.
func (e Expense) Day() string {
	return e.OccurredAt.Format(DateLayout)
}
