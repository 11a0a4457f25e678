package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/pauloatx/page-teste02/api"
	migrations "github.com/pauloatx/page-teste02/db"
	"github.com/pauloatx/page-teste02/internal/config"
	"github.com/pauloatx/page-teste02/internal/db"
	"github.com/pauloatx/page-teste02/internal/repository/mysql"
	"github.com/pauloatx/page-teste02/internal/repository/postgres"
	"github.com/pauloatx/page-teste02/internal/repository/sqlite"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// optional .env for local development; env vars win when both exist
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting atendimentos server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	// Open store connection; unreachable store at boot is fatal
	store, err := db.Open(ctx, cfg.DBOptions())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if err := db.Migrate(ctx, store, migrations.Migrations, cfg.UniqueEmail); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}

	var repo repository.RequestRepo
	switch store.Engine() {
	case db.EngineMySQL:
		repo = mysql.New(store, logger)
	case db.EnginePostgres:
		repo = postgres.New(store, logger)
	default:
		repo = sqlite.New(store, logger)
	}

	handler := api.SetupRoutes(cfg, repo)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s (store engine %s)", cfg.Addr, store.Engine())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close store connection
	if err := store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server exited")
}
