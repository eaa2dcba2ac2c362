// Package api defines the tripwiser.v1 wire messages and the Connect
// handler and client for TripService.
//
// Money travels as decimal strings ("12.50"), trip dates as YYYY-MM-DD and
// expense times as RFC 3339 with the offset they were recorded in.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Traveler struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type Expense struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	PayerID     string          `json:"payerId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Location    string          `json:"location,omitempty"`
	ReceiptRef  string          `json:"receiptRef,omitempty"`
}

type Trip struct {
	ID             string                     `json:"id"`
	Destination    string                     `json:"destination"`
	Travelers      []Traveler                 `json:"travelers"`
	Expenses       []Expense                  `json:"expenses"`
	CategoryBudget map[string]decimal.Decimal `json:"categoryBudget,omitempty"`
	StartDate      string                     `json:"startDate,omitempty"`
	EndDate        string                     `json:"endDate,omitempty"`
	CreatedAt      int64                      `json:"createdAt"`
	UpdatedAt      int64                      `json:"updatedAt"`
}

// TripListItem is the lightweight view returned by ListTrips.
type TripListItem struct {
	ID            string          `json:"id"`
	Destination   string          `json:"destination"`
	TravelerCount int             `json:"travelerCount"`
	ExpenseCount  int             `json:"expenseCount"`
	Total         decimal.Decimal `json:"total"`
	UpdatedAt     int64           `json:"updatedAt"`
}

type CreateTripRequest struct {
	Destination    string                     `json:"destination,omitempty"`
	Travelers      []string                   `json:"travelers,omitempty"`
	StartDate      string                     `json:"startDate,omitempty"`
	EndDate        string                     `json:"endDate,omitempty"`
	CategoryBudget map[string]decimal.Decimal `json:"categoryBudget,omitempty"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []TripListItem `json:"trips"`
}

// UpdateTripSettingsRequest replaces destination, dates and budget as a whole.
// Empty dates clear the range; a nil budget clears all category budgets.
type UpdateTripSettingsRequest struct {
	TripID         string                     `json:"tripId"`
	Destination    string                     `json:"destination"`
	StartDate      string                     `json:"startDate,omitempty"`
	EndDate        string                     `json:"endDate,omitempty"`
	CategoryBudget map[string]decimal.Decimal `json:"categoryBudget,omitempty"`
}

type UpdateTripSettingsResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripID string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddTravelerRequest struct {
	TripID      string `json:"tripId"`
	DisplayName string `json:"displayName"`
}

type AddTravelerResponse struct {
	Traveler *Traveler `json:"traveler"`
}

type RenameTravelerRequest struct {
	TripID      string `json:"tripId"`
	TravelerID  string `json:"travelerId"`
	DisplayName string `json:"displayName"`
}

type RenameTravelerResponse struct {
	Traveler *Traveler `json:"traveler"`
}

type AddExpenseRequest struct {
	TripID  string   `json:"tripId"`
	Expense *Expense `json:"expense"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type EditExpenseRequest struct {
	TripID  string   `json:"tripId"`
	Expense *Expense `json:"expense"`
}

type EditExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	TripID    string `json:"tripId"`
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type GetTripSummaryRequest struct {
	TripID string `json:"tripId"`
}

type GetTripSummaryResponse struct {
	Summary *TripSummary `json:"summary"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	SharePct decimal.Decimal `json:"sharePct"`
}

type Contribution struct {
	TravelerID  string          `json:"travelerId"`
	DisplayName string          `json:"displayName"`
	Paid        decimal.Decimal `json:"paid"`
}

type CategoryProgress struct {
	Category    string          `json:"category"`
	Spent       decimal.Decimal `json:"spent"`
	Budget      decimal.Decimal `json:"budget"`
	ProgressPct decimal.Decimal `json:"progressPct"`
}

// BudgetReport leaves duration-dependent figures null when the trip has no
// usable date range.
type BudgetReport struct {
	HasBudget          bool               `json:"hasBudget"`
	TotalBudget        decimal.Decimal    `json:"totalBudget"`
	OverallProgressPct decimal.Decimal    `json:"overallProgressPct"`
	Categories         []CategoryProgress `json:"categories"`
	TripDurationDays   *int               `json:"tripDurationDays"`
	DailyBudget        *decimal.Decimal   `json:"dailyBudget"`
}

type Balance struct {
	TravelerID  string          `json:"travelerId"`
	DisplayName string          `json:"displayName"`
	Paid        decimal.Decimal `json:"paid"`
	Net         decimal.Decimal `json:"net"`
}

type Transfer struct {
	FromTravelerID string          `json:"fromTravelerId"`
	ToTravelerID   string          `json:"toTravelerId"`
	Amount         decimal.Decimal `json:"amount"`
}

type DailyEntry struct {
	Date       string                     `json:"date"`
	Budget     *decimal.Decimal           `json:"budget"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	Total      decimal.Decimal            `json:"total"`
}

type TripSummary struct {
	TripID          string           `json:"tripId"`
	GrandTotal      decimal.Decimal  `json:"grandTotal"`
	ByCategory      []CategoryAmount `json:"byCategory"`
	Contributions   []Contribution   `json:"contributions"`
	Budget          BudgetReport     `json:"budget"`
	Balances        []Balance        `json:"balances"`
	Transfers       []Transfer       `json:"transfers"`
	Series          []DailyEntry     `json:"series,omitempty"`
	SeriesTruncated bool             `json:"seriesTruncated,omitempty"`
}
