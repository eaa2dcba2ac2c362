package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/pkg/api"
)

type stubTripService struct {
	api.UnimplementedTripServiceHandler
}

func (stubTripService) GetTrip(_ context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return connect.NewResponse(&api.GetTripResponse{Trip: &api.Trip{ID: req.Msg.TripID}}), nil
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	path, handler := api.NewTripServiceHandler(stubTripService{},
		connect.WithInterceptors(metrics.Interceptor(), LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewTripServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	for range 2 {
		_, err := client.GetTrip(ctx, connect.NewRequest(&api.GetTripRequest{TripID: "t1"}))
		require.NoError(t, err)
	}
	_, err := client.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripID: "t1"}))
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(api.TripServiceGetTripProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(api.TripServiceDeleteTripProcedure, "unimplemented")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/tripwiser.v1.TripService/GetTrip", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called, "preflight requests stop at the middleware")

	rec = httptest.NewRecorder()
	HTTPLogging(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tripwiser.v1.TripService/GetTrip", nil))
	assert.True(t, called)
}
