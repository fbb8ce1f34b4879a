// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/englajimmy/rsvp-api/auth"
	"github.com/englajimmy/rsvp-api/cliparse"
	"github.com/englajimmy/rsvp-api/middleware"
	"github.com/englajimmy/rsvp-api/models"
	"github.com/englajimmy/rsvp-api/store"
)

type RsvpHandler struct {
	cfg   cliparse.Config
	store *store.RsvpStore
	gate  *auth.Gate
}

func NewRsvpHandler(db *sql.DB, cfg cliparse.Config) *RsvpHandler {
	return &RsvpHandler{
		cfg:   cfg,
		store: store.New(db),
		gate:  auth.NewGate(cfg.APIKey),
	}
}

// Submit handles POST /rsvps
// Public: the frontend form posts here without credentials.
func (h *RsvpHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRsvpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, created, err := h.store.Submit(req)
	if err != nil {
		if store.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "An RSVP already exists for this name and email")
			return
		}
		slog.Error("failed to submit rsvp", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit RSVP")
		return
	}

	message := "RSVP submitted successfully."
	if !created {
		message = "RSVP updated successfully."
	}

	slog.Info("rsvp submitted", "rsvp_id", id, "created", created)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRsvpResponse{
		Status:  "ok",
		Message: message,
		Updated: !created,
	})
}

// List handles GET /rsvps
// Requires the X-API-Key header when an API key is configured.
func (h *RsvpHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.Authorize(r.Header.Get("X-API-Key")); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing API key")
		return
	}

	rsvps, err := h.store.ListAll()
	if err != nil {
		slog.Error("failed to list rsvps", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rsvps)
}
