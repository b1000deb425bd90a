// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the MRZ verification service.
package api

import (
	"context"
	_ "embed"
	"net/http"
	"passportmrz/internal/api/handler/v1handler"
	"passportmrz/internal/config"
	"passportmrz/pkg/controller"
	"passportmrz/pkg/logger"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes caps request bodies. Zero disables the cap.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the CORS origins.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Deps holds the services behind the HTTP server.
type Deps struct {
	v1handler.Deps

	// Ping backs /healthz. A nil Ping always reports healthy.
	Ping func(ctx context.Context) error
	// MeterProvider records HTTP metrics. Nil disables them.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Health check at /healthz
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes under /v1
// - pprof endpoints for profiling, outside the request timeout
// It also wraps the router with logging, CORS, metrics and body size middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	withMetrics, err := controller.WithMetrics(mp)
	if err != nil {
		return nil, errors.Wrap(err, "could not create metrics middleware")
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, errors.Wrap(err, "could not create sec handler")
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS(opts.AllowedOrigins))
	r.Use(withMetrics)
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/healthz", healthz(deps.Ping))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api
	r.Mount("/v1", v1handler.New(deps.Deps).Routes(secHandler))
	// v1 api swagger playground, registered after the mount it lives under
	r.Handle("/v1/docs/*", v5emb.New(
		"Passport MRZ Verification Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(r, opts.RequestTimeout, `{"code":"INTERNAL","message":"request timed out"}`)
	}

	mux := http.NewServeMux()
	mux.Handle(controller.PprofPrefix, controller.PprofMux())
	mux.Handle("/", handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           mux,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func healthz(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				status, code = "unavailable", http.StatusServiceUnavailable
			}
		}

		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("status")
		e.Str(status)
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write(e.Bytes())
	}
}
