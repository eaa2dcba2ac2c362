// Package tripfile reads trip snapshots from YAML files. JSON is valid YAML,
// so exported JSON snapshots load the same way.
package tripfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tripwiser/internal/models"
)

// File is the on-disk shape of a trip snapshot.
type File struct {
	Destination string            `yaml:"destination"`
	StartDate   string            `yaml:"startDate"`
	EndDate     string            `yaml:"endDate"`
	Travelers   []Traveler        `yaml:"travelers"`
	Expenses    []Expense         `yaml:"expenses"`
	Budget      map[string]string `yaml:"categoryBudget"`
}

// Traveler defaults its ID to its name when the file omits it.
type Traveler struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"displayName"`
}

type Expense struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Category    string `yaml:"category"`
	PayerID     string `yaml:"payerId"`
	OccurredAt  string `yaml:"occurredAt"`
	Location    string `yaml:"location"`
	ReceiptRef  string `yaml:"receiptRef"`
}

// timeLayouts are tried in order for occurredAt.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	models.DateLayout,
}

// Load reads and validates a trip file.
func Load(path string) (*models.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trip file: %w", err)
	}
	trip, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trip, nil
}

// Parse decodes a trip snapshot and validates it.
func Parse(data []byte) (*models.Trip, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing trip file: %w", err)
	}
	trip, err := f.Trip()
	if err != nil {
		return nil, err
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	return trip, nil
}

// Trip converts the file into a snapshot without validating it.
func (f *File) Trip() (*models.Trip, error) {
	dates, err := models.NewDateRange(f.StartDate, f.EndDate)
	if err != nil {
		return nil, err
	}
	trip := &models.Trip{
		Destination: f.Destination,
		Dates:       dates,
	}

	for _, t := range f.Travelers {
		id := t.ID
		if id == "" {
			id = t.DisplayName
		}
		trip.Travelers = append(trip.Travelers, models.Participant{ID: id, DisplayName: t.DisplayName})
	}

	for i, e := range f.Expenses {
		expense, err := e.model(i)
		if err != nil {
			return nil, err
		}
		trip.Expenses = append(trip.Expenses, expense)
	}

	for name, raw := range f.Budget {
		cat, err := models.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: budget for %s: %v", models.ErrInvalidTrip, name, err)
		}
		if trip.Budget == nil {
			trip.Budget = make(models.CategoryBudget)
		}
		trip.Budget[cat] = amount
	}
	return trip, nil
}

func (e Expense) model(i int) (models.Expense, error) {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("expense-%d", i+1)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: expense %s amount: %v", models.ErrInvalidTrip, id, err)
	}
	category, err := models.ParseCategory(e.Category)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, err)
	}
	occurredAt, err := parseTime(e.OccurredAt)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: expense %s: %v", models.ErrInvalidTrip, id, err)
	}
	return models.Expense{
		ID:          id,
		Description: e.Description,
		Amount:      amount,
		Category:    category,
		PayerID:     e.PayerID,
		OccurredAt:  occurredAt,
		Location:    e.Location,
		ReceiptRef:  e.ReceiptRef,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
