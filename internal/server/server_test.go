package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/config"
	"github.com/mmynk/tripwiser/internal/storage/memory"
	"github.com/mmynk/tripwiser/pkg/api"
)

func testConfig(metrics bool) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080},
		Database: config.DatabaseConfig{Path: "unused"},
		Log:      config.LogConfig{Level: "info", Format: "text"},
		Metrics:  config.MetricsConfig{Enabled: metrics, Path: "/metrics"},
	}
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandler(t *testing.T) {
	server := httptest.NewServer(Handler(testConfig(true), memory.New(), prometheus.NewRegistry()))
	defer server.Close()

	code, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	client := api.NewTripServiceClient(http.DefaultClient, server.URL)
	resp, err := client.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{Destination: "Rome"}))
	require.NoError(t, err)
	assert.Equal(t, "Rome", resp.Msg.Trip.Destination)

	code, body = get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `tripwiser_rpc_requests_total{code="ok",procedure="/tripwiser.v1.TripService/CreateTrip"} 1`)
}

func TestHandlerWithoutMetrics(t *testing.T) {
	server := httptest.NewServer(Handler(testConfig(false), memory.New(), prometheus.NewRegistry()))
	defer server.Close()

	code, _ := get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestNew(t *testing.T) {
	srv := New(testConfig(true), memory.New(), prometheus.NewRegistry())
	assert.Equal(t, ":8080", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
