// Package server assembles the tripwiser HTTP handler: Connect routes,
// health and metrics endpoints, CORS and h2c.
package server

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tripwiser/internal/config"
	"github.com/mmynk/tripwiser/internal/middleware"
	"github.com/mmynk/tripwiser/internal/service"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
)

// pinger is implemented by stores that can report their health.
type pinger interface {
	Ping(ctx context.Context) error
}

// Handler builds the root handler. Metrics are registered with reg when enabled.
func Handler(cfg *config.Config, store storage.Store, reg *prometheus.Registry) http.Handler {
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if cfg.Metrics.Enabled {
		metrics := middleware.NewMetrics(reg)
		interceptors = append([]connect.Interceptor{metrics.Interceptor()}, interceptors...)
	}

	mux := http.NewServeMux()

	path, handler := api.NewTripServiceHandler(
		service.NewTripService(store),
		connect.WithInterceptors(interceptors...),
	)
	mux.Handle(path, handler)

	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})
}

// New returns an http.Server configured from cfg.
func New(cfg *config.Config, store storage.Store, reg *prometheus.Registry) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      Handler(cfg, store, reg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
