package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/analytics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/metrics"
	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/snapshot"
)

type application struct {
	config    config
	snapshot  *snapshot.Snapshot
	reporter  *analytics.Reporter
	appLogger *logger.Logger
	metrics   *metrics.Collector
	registry  *prometheus.Registry
}

type config struct {
	addr   string
	source snapshot.Config
	db     dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/bounds", app.handleGetBounds)
		r.Route("/report", func(r chi.Router) {
			r.Get("/", app.handleGetReport)
			r.Get("/daily", app.handleGetDailyOrders)
			r.Get("/demographics", app.handleGetDemographics)
			r.Route("/rfm", func(r chi.Router) {
				r.Get("/customers", app.handleGetCustomerRFM)
				r.Get("/states", app.handleGetStateRFM)
				r.Get("/map", app.handleGetStateRFMMap)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.appLogger.Info("Server", "Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
