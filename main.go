package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/englajimmy/rsvp-api/cliparse"
	"github.com/englajimmy/rsvp-api/db"
	"github.com/englajimmy/rsvp-api/middleware"
	"github.com/englajimmy/rsvp-api/router"
)

func main() {
	var err error

	// Load .env so DATABASE_URL and API_KEY work when testing locally.
	// Missing file is fine in deployment.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Bring the rsvps table to the current shape before serving anything.
	// A failure here is fatal: no partial-service mode.
	if err := db.Reconcile(dbConn); err != nil {
		slog.Error("schema reconciliation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set; GET /rsvps is open")
	}

	// Create router; CORS wraps the whole mux so the frontend can call us
	// from another origin
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
