package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
)

func FromTraveler(p models.Participant) *Traveler {
	return &Traveler{ID: p.ID, DisplayName: p.DisplayName}
}

func FromExpense(e models.Expense) *Expense {
	return &Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		PayerID:     e.PayerID,
		OccurredAt:  e.OccurredAt,
		Location:    e.Location,
		ReceiptRef:  e.ReceiptRef,
	}
}

// ToModel converts the wire expense, rejecting unknown categories.
func (e *Expense) ToModel() (models.Expense, error) {
	category, err := models.ParseCategory(e.Category)
	if err != nil {
		return models.Expense{}, err
	}
	return models.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    category,
		PayerID:     e.PayerID,
		OccurredAt:  e.OccurredAt,
		Location:    e.Location,
		ReceiptRef:  e.ReceiptRef,
	}, nil
}

func FromTrip(trip *models.Trip) *Trip {
	out := &Trip{
		ID:          trip.ID,
		Destination: trip.Destination,
		Travelers:   make([]Traveler, len(trip.Travelers)),
		Expenses:    make([]Expense, len(trip.Expenses)),
		StartDate:   trip.Dates.StartString(),
		EndDate:     trip.Dates.EndString(),
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
	for i, p := range trip.Travelers {
		out.Travelers[i] = *FromTraveler(p)
	}
	for i, e := range trip.Expenses {
		out.Expenses[i] = *FromExpense(e)
	}
	if len(trip.Budget) > 0 {
		out.CategoryBudget = make(map[string]decimal.Decimal, len(trip.Budget))
		for cat, amount := range trip.Budget {
			out.CategoryBudget[string(cat)] = amount
		}
	}
	return out
}

// ToModel converts the wire trip back into a snapshot. It does not validate
// cross-references; call Trip.Validate on the result.
func (t *Trip) ToModel() (*models.Trip, error) {
	dates, err := models.NewDateRange(t.StartDate, t.EndDate)
	if err != nil {
		return nil, err
	}
	budget, err := ParseBudget(t.CategoryBudget)
	if err != nil {
		return nil, err
	}
	trip := &models.Trip{
		ID:          t.ID,
		Destination: t.Destination,
		Budget:      budget,
		Dates:       dates,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, p := range t.Travelers {
		trip.Travelers = append(trip.Travelers, models.Participant{ID: p.ID, DisplayName: p.DisplayName})
	}
	for i := range t.Expenses {
		e, err := t.Expenses[i].ToModel()
		if err != nil {
			return nil, err
		}
		trip.Expenses = append(trip.Expenses, e)
	}
	return trip, nil
}

// ParseBudget converts wire category names into a CategoryBudget.
func ParseBudget(in map[string]decimal.Decimal) (models.CategoryBudget, error) {
	if len(in) == 0 {
		return nil, nil
	}
	budget := make(models.CategoryBudget, len(in))
	for name, amount := range in {
		cat, err := models.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("budget: %w", err)
		}
		budget[cat] = amount
	}
	return budget, nil
}

func FromTripListItem(trip *models.Trip) TripListItem {
	return TripListItem{
		ID:            trip.ID,
		Destination:   trip.Destination,
		TravelerCount: len(trip.Travelers),
		ExpenseCount:  len(trip.Expenses),
		Total:         trip.TotalSpent(),
		UpdatedAt:     trip.UpdatedAt,
	}
}

// FromSummary flattens a calculator summary into its wire form.
func FromSummary(tripID string, s *calculator.Summary) *TripSummary {
	out := &TripSummary{
		TripID:     tripID,
		GrandTotal: s.Aggregates.GrandTotal,
		Budget: BudgetReport{
			HasBudget:          s.Budget.HasBudget,
			TotalBudget:        s.Budget.TotalBudget,
			OverallProgressPct: s.Budget.OverallProgressPct,
			TripDurationDays:   s.Budget.TripDurationDays,
			DailyBudget:        s.Budget.DailyBudget,
		},
	}

	for _, share := range s.Aggregates.CategoryShares() {
		out.ByCategory = append(out.ByCategory, CategoryAmount{
			Category: string(share.Category),
			Amount:   share.Amount,
			SharePct: share.Percent,
		})
	}
	for _, c := range s.Contributions {
		out.Contributions = append(out.Contributions, Contribution{
			TravelerID:  c.ParticipantID,
			DisplayName: c.DisplayName,
			Paid:        c.Paid,
		})
	}
	for _, p := range s.Budget.Categories {
		out.Budget.Categories = append(out.Budget.Categories, CategoryProgress{
			Category:    string(p.Category),
			Spent:       p.Spent,
			Budget:      p.Budget,
			ProgressPct: p.ProgressPct,
		})
	}

	if s.Settlement != nil {
		for _, b := range s.Settlement.Balances {
			out.Balances = append(out.Balances, Balance{
				TravelerID:  b.ParticipantID,
				DisplayName: b.DisplayName,
				Paid:        b.Paid,
				Net:         b.Net,
			})
		}
		for _, tx := range s.Settlement.Transactions {
			out.Transfers = append(out.Transfers, Transfer{
				FromTravelerID: tx.FromParticipantID,
				ToTravelerID:   tx.ToParticipantID,
				Amount:         tx.Amount,
			})
		}
	}

	if s.Series != nil {
		out.SeriesTruncated = s.Series.Truncated
		for _, day := range s.Series.Days {
			entry := DailyEntry{
				Date:       day.Date,
				Budget:     day.Budget,
				ByCategory: make(map[string]decimal.Decimal, len(day.ByCategory)),
				Total:      day.Total,
			}
			for cat, amount := range day.ByCategory {
				entry.ByCategory[string(cat)] = amount
			}
			out.Series = append(out.Series, entry)
		}
	}
	return out
}
