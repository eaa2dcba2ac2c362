package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripwiser.v1.TripService"

// Procedure paths for every TripService RPC.
const (
	TripServiceCreateTripProcedure         = "/tripwiser.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure            = "/tripwiser.v1.TripService/GetTrip"
	TripServiceListTripsProcedure          = "/tripwiser.v1.TripService/ListTrips"
	TripServiceUpdateTripSettingsProcedure = "/tripwiser.v1.TripService/UpdateTripSettings"
	TripServiceDeleteTripProcedure         = "/tripwiser.v1.TripService/DeleteTrip"
	TripServiceAddTravelerProcedure        = "/tripwiser.v1.TripService/AddTraveler"
	TripServiceRenameTravelerProcedure     = "/tripwiser.v1.TripService/RenameTraveler"
	TripServiceAddExpenseProcedure         = "/tripwiser.v1.TripService/AddExpense"
	TripServiceEditExpenseProcedure        = "/tripwiser.v1.TripService/EditExpense"
	TripServiceDeleteExpenseProcedure      = "/tripwiser.v1.TripService/DeleteExpense"
	TripServiceGetTripSummaryProcedure     = "/tripwiser.v1.TripService/GetTripSummary"
)

// TripServiceHandler is implemented by the server side of TripService.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error)
	UpdateTripSettings(context.Context, *connect.Request[UpdateTripSettingsRequest]) (*connect.Response[UpdateTripSettingsResponse], error)
	DeleteTrip(context.Context, *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error)
	AddTraveler(context.Context, *connect.Request[AddTravelerRequest]) (*connect.Response[AddTravelerResponse], error)
	RenameTraveler(context.Context, *connect.Request[RenameTravelerRequest]) (*connect.Response[RenameTravelerResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	EditExpense(context.Context, *connect.Request[EditExpenseRequest]) (*connect.Response[EditExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	GetTripSummary(context.Context, *connect.Request[GetTripSummaryRequest]) (*connect.Response[GetTripSummaryResponse], error)
}

// NewTripServiceHandler builds an HTTP handler serving every TripService
// procedure. It returns the path to mount the handler on.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TripServiceCreateTripProcedure, connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...))
	mux.Handle(TripServiceGetTripProcedure, connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...))
	mux.Handle(TripServiceListTripsProcedure, connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...))
	mux.Handle(TripServiceUpdateTripSettingsProcedure, connect.NewUnaryHandler(TripServiceUpdateTripSettingsProcedure, svc.UpdateTripSettings, opts...))
	mux.Handle(TripServiceDeleteTripProcedure, connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...))
	mux.Handle(TripServiceAddTravelerProcedure, connect.NewUnaryHandler(TripServiceAddTravelerProcedure, svc.AddTraveler, opts...))
	mux.Handle(TripServiceRenameTravelerProcedure, connect.NewUnaryHandler(TripServiceRenameTravelerProcedure, svc.RenameTraveler, opts...))
	mux.Handle(TripServiceAddExpenseProcedure, connect.NewUnaryHandler(TripServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(TripServiceEditExpenseProcedure, connect.NewUnaryHandler(TripServiceEditExpenseProcedure, svc.EditExpense, opts...))
	mux.Handle(TripServiceDeleteExpenseProcedure, connect.NewUnaryHandler(TripServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(TripServiceGetTripSummaryProcedure, connect.NewUnaryHandler(TripServiceGetTripSummaryProcedure, svc.GetTripSummary, opts...))

	return "/" + TripServiceName + "/", mux
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(strings.TrimPrefix(procedure, "/")+" is not implemented"))
}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error) {
	return nil, unimplemented(TripServiceCreateTripProcedure)
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error) {
	return nil, unimplemented(TripServiceGetTripProcedure)
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error) {
	return nil, unimplemented(TripServiceListTripsProcedure)
}

func (UnimplementedTripServiceHandler) UpdateTripSettings(context.Context, *connect.Request[UpdateTripSettingsRequest]) (*connect.Response[UpdateTripSettingsResponse], error) {
	return nil, unimplemented(TripServiceUpdateTripSettingsProcedure)
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error) {
	return nil, unimplemented(TripServiceDeleteTripProcedure)
}

func (UnimplementedTripServiceHandler) AddTraveler(context.Context, *connect.Request[AddTravelerRequest]) (*connect.Response[AddTravelerResponse], error) {
	return nil, unimplemented(TripServiceAddTravelerProcedure)
}

func (UnimplementedTripServiceHandler) RenameTraveler(context.Context, *connect.Request[RenameTravelerRequest]) (*connect.Response[RenameTravelerResponse], error) {
	return nil, unimplemented(TripServiceRenameTravelerProcedure)
}

func (UnimplementedTripServiceHandler) AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return nil, unimplemented(TripServiceAddExpenseProcedure)
}

func (UnimplementedTripServiceHandler) EditExpense(context.Context, *connect.Request[EditExpenseRequest]) (*connect.Response[EditExpenseResponse], error) {
	return nil, unimplemented(TripServiceEditExpenseProcedure)
}

func (UnimplementedTripServiceHandler) DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return nil, unimplemented(TripServiceDeleteExpenseProcedure)
}

func (UnimplementedTripServiceHandler) GetTripSummary(context.Context, *connect.Request[GetTripSummaryRequest]) (*connect.Response[GetTripSummaryResponse], error) {
	return nil, unimplemented(TripServiceGetTripSummaryProcedure)
}

// TripServiceClient is a client for TripService.
type TripServiceClient struct {
	createTrip         *connect.Client[CreateTripRequest, CreateTripResponse]
	getTrip            *connect.Client[GetTripRequest, GetTripResponse]
	listTrips          *connect.Client[ListTripsRequest, ListTripsResponse]
	updateTripSettings *connect.Client[UpdateTripSettingsRequest, UpdateTripSettingsResponse]
	deleteTrip         *connect.Client[DeleteTripRequest, DeleteTripResponse]
	addTraveler        *connect.Client[AddTravelerRequest, AddTravelerResponse]
	renameTraveler     *connect.Client[RenameTravelerRequest, RenameTravelerResponse]
	addExpense         *connect.Client[AddExpenseRequest, AddExpenseResponse]
	editExpense        *connect.Client[EditExpenseRequest, EditExpenseResponse]
	deleteExpense      *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	getTripSummary     *connect.Client[GetTripSummaryRequest, GetTripSummaryResponse]
}

// NewTripServiceClient constructs a client for TripService. baseURL is the
// server root, for example http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &TripServiceClient{
		createTrip:         connect.NewClient[CreateTripRequest, CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:            connect.NewClient[GetTripRequest, GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:          connect.NewClient[ListTripsRequest, ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		updateTripSettings: connect.NewClient[UpdateTripSettingsRequest, UpdateTripSettingsResponse](httpClient, baseURL+TripServiceUpdateTripSettingsProcedure, opts...),
		deleteTrip:         connect.NewClient[DeleteTripRequest, DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addTraveler:        connect.NewClient[AddTravelerRequest, AddTravelerResponse](httpClient, baseURL+TripServiceAddTravelerProcedure, opts...),
		renameTraveler:     connect.NewClient[RenameTravelerRequest, RenameTravelerResponse](httpClient, baseURL+TripServiceRenameTravelerProcedure, opts...),
		addExpense:         connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+TripServiceAddExpenseProcedure, opts...),
		editExpense:        connect.NewClient[EditExpenseRequest, EditExpenseResponse](httpClient, baseURL+TripServiceEditExpenseProcedure, opts...),
		deleteExpense:      connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+TripServiceDeleteExpenseProcedure, opts...),
		getTripSummary:     connect.NewClient[GetTripSummaryRequest, GetTripSummaryResponse](httpClient, baseURL+TripServiceGetTripSummaryProcedure, opts...),
	}
}

func (c *TripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) GetTrip(ctx context.Context, req *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) ListTrips(ctx context.Context, req *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *TripServiceClient) UpdateTripSettings(ctx context.Context, req *connect.Request[UpdateTripSettingsRequest]) (*connect.Response[UpdateTripSettingsResponse], error) {
	return c.updateTripSettings.CallUnary(ctx, req)
}

func (c *TripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) AddTraveler(ctx context.Context, req *connect.Request[AddTravelerRequest]) (*connect.Response[AddTravelerResponse], error) {
	return c.addTraveler.CallUnary(ctx, req)
}

func (c *TripServiceClient) RenameTraveler(ctx context.Context, req *connect.Request[RenameTravelerRequest]) (*connect.Response[RenameTravelerResponse], error) {
	return c.renameTraveler.CallUnary(ctx, req)
}

func (c *TripServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *TripServiceClient) EditExpense(ctx context.Context, req *connect.Request[EditExpenseRequest]) (*connect.Response[EditExpenseResponse], error) {
	return c.editExpense.CallUnary(ctx, req)
}

func (c *TripServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *TripServiceClient) GetTripSummary(ctx context.Context, req *connect.Request[GetTripSummaryRequest]) (*connect.Response[GetTripSummaryResponse], error) {
	return c.getTripSummary.CallUnary(ctx, req)
}
