package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
)

// DefaultDestination names trips created without a destination.
const DefaultDestination = "My First Trip"

const (
	summaryCacheExpiration = 15 * time.Minute
	summaryCacheCleanup    = 30 * time.Minute
)

// TripService implements the Connect TripService
type TripService struct {
	api.UnimplementedTripServiceHandler
	store     storage.Store
	locks     *tripLocks
	summaries *cache.Cache // trip ID -> *api.TripSummary, dropped on every write
	now       func() time.Time
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{
		store:     store,
		locks:     newTripLocks(),
		summaries: cache.New(summaryCacheExpiration, summaryCacheCleanup),
		now:       time.Now,
	}
}

// update loads the trip, applies fn to a private copy, validates the result
// and writes it back as one snapshot. Writes to the same trip are serialized.
func (s *TripService) update(ctx context.Context, tripID string, fn func(trip *models.Trip) error) (*models.Trip, error) {
	if tripID == "" {
		return nil, invalidArgument("trip_id required")
	}

	unlock := s.locks.lock(tripID)
	defer unlock()

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := fn(trip); err != nil {
		return nil, err
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	s.summaries.Delete(tripID)
	return trip, nil
}

// CreateTrip creates a trip with the given travelers, dates and budget.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	slog.Info("CreateTrip request received",
		"destination", req.Msg.Destination,
		"travelers_count", len(req.Msg.Travelers),
	)

	dates, err := models.NewDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError("CreateTrip", err)
	}
	budget, err := api.ParseBudget(req.Msg.CategoryBudget)
	if err != nil {
		return nil, toConnectError("CreateTrip", err)
	}

	trip := &models.Trip{
		ID:          uuid.New().String(),
		Destination: strings.TrimSpace(req.Msg.Destination),
		Budget:      budget,
		Dates:       dates,
	}
	if trip.Destination == "" {
		trip.Destination = DefaultDestination
	}
	for _, name := range req.Msg.Travelers {
		trip.Travelers = append(trip.Travelers, models.Participant{
			ID:          uuid.New().String(),
			DisplayName: strings.TrimSpace(name),
		})
	}

	if err := trip.Validate(); err != nil {
		return nil, toConnectError("CreateTrip", err)
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, toConnectError("CreateTrip", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)

	return connect.NewResponse(&api.CreateTripResponse{Trip: api.FromTrip(trip)}), nil
}

// GetTrip retrieves a full trip snapshot.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripID)

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError("GetTrip", err)
	}

	slog.Info("GetTrip successful", "trip_id", trip.ID, "expenses_count", len(trip.Expenses))

	return connect.NewResponse(&api.GetTripResponse{Trip: api.FromTrip(trip)}), nil
}

// ListTrips lists every trip, most recently updated first.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	slog.Info("ListTrips request received")

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, toConnectError("ListTrips", err)
	}

	items := make([]api.TripListItem, len(trips))
	for i, trip := range trips {
		items[i] = api.FromTripListItem(trip)
	}

	slog.Info("ListTrips successful", "count", len(items))

	return connect.NewResponse(&api.ListTripsResponse{Trips: items}), nil
}

// UpdateTripSettings replaces destination, date range and category budget.
func (s *TripService) UpdateTripSettings(ctx context.Context, req *connect.Request[api.UpdateTripSettingsRequest]) (*connect.Response[api.UpdateTripSettingsResponse], error) {
	slog.Info("UpdateTripSettings request received",
		"trip_id", req.Msg.TripID,
		"start_date", req.Msg.StartDate,
		"end_date", req.Msg.EndDate,
		"budget_categories", len(req.Msg.CategoryBudget),
	)

	dates, err := models.NewDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError("UpdateTripSettings", err)
	}
	budget, err := api.ParseBudget(req.Msg.CategoryBudget)
	if err != nil {
		return nil, toConnectError("UpdateTripSettings", err)
	}

	trip, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		trip.Destination = strings.TrimSpace(req.Msg.Destination)
		trip.Dates = dates
		trip.Budget = budget
		return nil
	})
	if err != nil {
		return nil, toConnectError("UpdateTripSettings", err)
	}

	slog.Info("Trip settings updated", "trip_id", trip.ID)

	return connect.NewResponse(&api.UpdateTripSettingsResponse{Trip: api.FromTrip(trip)}), nil
}

// DeleteTrip removes a trip and all of its expenses.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripID)

	if req.Msg.TripID == "" {
		return nil, invalidArgument("trip_id required")
	}

	unlock := s.locks.lock(req.Msg.TripID)
	defer unlock()

	if err := s.store.DeleteTrip(ctx, req.Msg.TripID); err != nil {
		return nil, toConnectError("DeleteTrip", err)
	}
	s.summaries.Delete(req.Msg.TripID)

	slog.Info("Trip deleted", "trip_id", req.Msg.TripID)

	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddTraveler adds a traveler with a server-generated ID.
func (s *TripService) AddTraveler(ctx context.Context, req *connect.Request[api.AddTravelerRequest]) (*connect.Response[api.AddTravelerResponse], error) {
	slog.Info("AddTraveler request received", "trip_id", req.Msg.TripID, "display_name", req.Msg.DisplayName)

	traveler := models.Participant{
		ID:          uuid.New().String(),
		DisplayName: strings.TrimSpace(req.Msg.DisplayName),
	}
	if traveler.DisplayName == "" {
		return nil, invalidArgument("display_name required")
	}

	if _, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		trip.Travelers = append(trip.Travelers, traveler)
		return nil
	}); err != nil {
		return nil, toConnectError("AddTraveler", err)
	}

	slog.Info("Traveler added", "trip_id", req.Msg.TripID, "traveler_id", traveler.ID)

	return connect.NewResponse(&api.AddTravelerResponse{Traveler: api.FromTraveler(traveler)}), nil
}

// RenameTraveler changes a traveler's display name. The ID is stable, so
// expenses paid by the traveler are unaffected.
func (s *TripService) RenameTraveler(ctx context.Context, req *connect.Request[api.RenameTravelerRequest]) (*connect.Response[api.RenameTravelerResponse], error) {
	slog.Info("RenameTraveler request received",
		"trip_id", req.Msg.TripID,
		"traveler_id", req.Msg.TravelerID,
	)

	name := strings.TrimSpace(req.Msg.DisplayName)
	if name == "" {
		return nil, invalidArgument("display_name required")
	}

	var renamed models.Participant
	if _, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		traveler, err := trip.Traveler(req.Msg.TravelerID)
		if err != nil {
			return err
		}
		traveler.DisplayName = name
		renamed = *traveler
		return nil
	}); err != nil {
		return nil, toConnectError("RenameTraveler", err)
	}

	slog.Info("Traveler renamed", "trip_id", req.Msg.TripID, "traveler_id", renamed.ID)

	return connect.NewResponse(&api.RenameTravelerResponse{Traveler: api.FromTraveler(renamed)}), nil
}

// AddExpense logs a new expense. The server assigns the ID; a missing
// occurrence time defaults to now.
func (s *TripService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	if req.Msg.Expense == nil {
		return nil, invalidArgument("expense required")
	}
	slog.Info("AddExpense request received",
		"trip_id", req.Msg.TripID,
		"amount", req.Msg.Expense.Amount.String(),
		"category", req.Msg.Expense.Category,
		"payer_id", req.Msg.Expense.PayerID,
	)

	expense, err := req.Msg.Expense.ToModel()
	if err != nil {
		return nil, toConnectError("AddExpense", err)
	}
	expense.ID = uuid.New().String()
	if expense.OccurredAt.IsZero() {
		expense.OccurredAt = s.now()
	}

	if _, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		trip.Expenses = append(trip.Expenses, expense)
		return nil
	}); err != nil {
		return nil, toConnectError("AddExpense", err)
	}

	slog.Info("Expense added", "trip_id", req.Msg.TripID, "expense_id", expense.ID)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: api.FromExpense(expense)}), nil
}

// EditExpense replaces the expense with the same ID.
func (s *TripService) EditExpense(ctx context.Context, req *connect.Request[api.EditExpenseRequest]) (*connect.Response[api.EditExpenseResponse], error) {
	if req.Msg.Expense == nil || req.Msg.Expense.ID == "" {
		return nil, invalidArgument("expense with id required")
	}
	slog.Info("EditExpense request received",
		"trip_id", req.Msg.TripID,
		"expense_id", req.Msg.Expense.ID,
	)

	expense, err := req.Msg.Expense.ToModel()
	if err != nil {
		return nil, toConnectError("EditExpense", err)
	}

	if _, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		return trip.ReplaceExpense(expense)
	}); err != nil {
		return nil, toConnectError("EditExpense", err)
	}

	slog.Info("Expense updated", "trip_id", req.Msg.TripID, "expense_id", expense.ID)

	return connect.NewResponse(&api.EditExpenseResponse{Expense: api.FromExpense(expense)}), nil
}

// DeleteExpense removes an expense by ID.
func (s *TripService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received",
		"trip_id", req.Msg.TripID,
		"expense_id", req.Msg.ExpenseID,
	)

	if _, err := s.update(ctx, req.Msg.TripID, func(trip *models.Trip) error {
		return trip.RemoveExpense(req.Msg.ExpenseID)
	}); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	slog.Info("Expense deleted", "trip_id", req.Msg.TripID, "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetTripSummary computes aggregates, budget progress, the settlement plan and
// the daily series from a single snapshot of the trip. Results are cached until
// the next write to the trip.
func (s *TripService) GetTripSummary(ctx context.Context, req *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error) {
	slog.Info("GetTripSummary request received", "trip_id", req.Msg.TripID)

	if req.Msg.TripID == "" {
		return nil, invalidArgument("trip_id required")
	}

	if cached, found := s.summaries.Get(req.Msg.TripID); found {
		slog.Debug("Summary cache hit", "trip_id", req.Msg.TripID)
		return connect.NewResponse(&api.GetTripSummaryResponse{Summary: cached.(*api.TripSummary)}), nil
	}

	// Hold the trip lock so a concurrent write cannot land between the read
	// and the cache fill.
	unlock := s.locks.lock(req.Msg.TripID)
	defer unlock()

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError("GetTripSummary", err)
	}

	summary, err := calculator.Summarize(trip)
	if err != nil {
		return nil, toConnectError("GetTripSummary", err)
	}
	out := api.FromSummary(trip.ID, summary)
	s.summaries.Set(trip.ID, out, cache.DefaultExpiration)

	slog.Info("GetTripSummary successful",
		"trip_id", trip.ID,
		"grand_total", summary.Aggregates.GrandTotal.String(),
		"transactions_count", len(summary.Settlement.Transactions),
	)

	return connect.NewResponse(&api.GetTripSummaryResponse{Summary: out}), nil
}
