package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wxtools/wxdb/config"
	"github.com/wxtools/wxdb/controllers"
	"github.com/wxtools/wxdb/database"
	wxmiddleware "github.com/wxtools/wxdb/middleware"
	"github.com/wxtools/wxdb/observability"
	"github.com/wxtools/wxdb/repositories"
	"github.com/wxtools/wxdb/services"
)

func main() {
	// Load environment variables from .env file if present; in the
	// container everything arrives via the compose environment
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database and run migrations
	db, err := database.Initialize(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)

	// Initialize repositories, services, controllers
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(db, repos, metrics)
	ctrl := controllers.NewControllers(srvs)

	r := setupRouter(ctrl, registry)

	log.Printf("wxdb starting on port %s (driver=%s)", cfg.Port, cfg.Driver)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, registry *prometheus.Registry) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(wxmiddleware.Principal)

	r.Get("/health", ctrl.Health.Show)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/stations", func(r chi.Router) {
		r.Get("/", ctrl.Station.Index)
		r.Post("/", ctrl.Station.Create)
		r.Get("/{primary_id}", ctrl.Station.Show)
	})

	r.Route("/observations", func(r chi.Router) {
		r.Get("/", ctrl.Observation.Index)
		r.Post("/", ctrl.Observation.Create)
		r.Get("/{id}", ctrl.Observation.Show)
		r.Get("/{id}/audit", ctrl.Observation.Audit)

		// Deletes feed the audit trail and must carry an identity
		r.Group(func(r chi.Router) {
			r.Use(wxmiddleware.RequirePrincipal)
			r.Delete("/{id}", ctrl.Observation.Delete)
		})
	})

	return r
}
