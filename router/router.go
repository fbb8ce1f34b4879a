// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/englajimmy/rsvp-api/cliparse"
	"github.com/englajimmy/rsvp-api/handlers"
	"github.com/englajimmy/rsvp-api/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	rsvpHandler := handlers.NewRsvpHandler(db, cfg)

	// Health check: constant-time liveness, touches no storage
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// RSVP submission (public) and listing (gated when API_KEY is set)
	mux.HandleFunc("POST /rsvps", middleware.WithLogging(rsvpHandler.Submit))
	mux.HandleFunc("GET /rsvps", middleware.WithLogging(rsvpHandler.List))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Englajimmy RSVP API"))
	})

	return mux
}
