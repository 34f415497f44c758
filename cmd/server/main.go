package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/api"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/config"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/metrics"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("IEEE branch site starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	pool, err := db.InitPostgres(cfg.Postgres)
	if err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM and run content migrations
	orm, err := db.InitPostgresORM(cfg.Postgres)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(cfg, pool, orm, metricsReg)
	if err != nil {
		logging.Error("Failed to initialize dependencies", "error", err.Error())
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	// The subscribers table lives outside GORM's migrations
	if err := deps.Repo.Subscribers.EnsureSchema(context.Background()); err != nil {
		logging.Error("Failed to prepare subscribers table", "error", err.Error())
		log.Fatalf("Failed to prepare subscribers table: %v", err)
	}

	upSince := time.Now()

	router := routes.RegisterRoutes(deps, pool, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
