// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/englajimmy/rsvp-api/models"
	"github.com/englajimmy/rsvp-api/testutil"
)

func TestSubmit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewRsvpHandler(db, cfg)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid submission",
			body:       map[string]interface{}{"name": "Ann", "email": "ann@x.com"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       map[string]interface{}{"email": "ann@x.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       map[string]interface{}{"name": "Ann"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email",
			body:       map[string]interface{}{"name": "Ann", "email": "nope"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "name too long",
			body:       map[string]interface{}{"name": strings.Repeat("a", 256), "email": "ann@x.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "allergies too long",
			body:       map[string]interface{}{"name": "Ann", "email": "a2@x.com", "allergies": strings.Repeat("x", 501)},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest(t, "POST", "/rsvps", tc.body, nil)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, tc.wantStatus)
		})
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRsvpHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/rsvps", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmit_ReportsCreatedThenUpdated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRsvpHandler(db, testutil.GetTestConfig())

	// First submission
	req := testutil.MakeRequest(t, "POST", "/rsvps", map[string]interface{}{
		"name":  "Ann",
		"email": "ann@x.com",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.SubmitRsvpResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Updated {
		t.Error("first submission should report updated=false")
	}

	// Resubmission for the same guest
	req = testutil.MakeRequest(t, "POST", "/rsvps", map[string]interface{}{
		"name":      "Ann",
		"email":     "ann@x.com",
		"coming":    false,
		"allergies": "nuts",
	}, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	testutil.AssertJSON(t, w, &resp)
	if !resp.Updated {
		t.Error("resubmission should report updated=true")
	}

	if got := testutil.CountRsvps(t, db); got != 1 {
		t.Errorf("expected 1 row after resubmission, got %d", got)
	}
}

func TestList_OpenMode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// No API key configured: list is open
	handler := NewRsvpHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest(t, "POST", "/rsvps", map[string]interface{}{
		"name":  "Ann",
		"email": "ann@x.com",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	for _, headers := range []map[string]string{
		nil,
		{"X-API-Key": "anything"},
	} {
		req = testutil.MakeRequest(t, "GET", "/rsvps", nil, headers)
		w = httptest.NewRecorder()
		handler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var rsvps []models.Rsvp
		testutil.AssertJSON(t, w, &rsvps)
		if len(rsvps) != 1 {
			t.Errorf("expected 1 rsvp, got %d", len(rsvps))
		}
	}
}

func TestList_Gated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.APIKey = "secret"
	handler := NewRsvpHandler(db, cfg)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{"X-API-Key": "wrong"}, http.StatusUnauthorized},
		{"correct key", map[string]string{"X-API-Key": "secret"}, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest(t, "GET", "/rsvps", nil, tc.headers)
			w := httptest.NewRecorder()

			handler.List(w, req)

			testutil.AssertStatus(t, w, tc.wantStatus)
		})
	}
}

func TestList_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRsvpHandler(db, testutil.GetTestConfig())

	for _, email := range []string{"ann@x.com", "bob@x.com"} {
		req := testutil.MakeRequest(t, "POST", "/rsvps", map[string]interface{}{
			"name":  "Guest",
			"email": email,
		}, nil)
		w := httptest.NewRecorder()
		handler.Submit(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
		time.Sleep(20 * time.Millisecond)
	}

	req := testutil.MakeRequest(t, "GET", "/rsvps", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rsvps []models.Rsvp
	testutil.AssertJSON(t, w, &rsvps)
	if len(rsvps) != 2 {
		t.Fatalf("expected 2 rsvps, got %d", len(rsvps))
	}
	if rsvps[0].Email != "bob@x.com" {
		t.Errorf("expected most recent submission first, got %s", rsvps[0].Email)
	}
}

// The submit endpoint stays open even when a key is configured: the gate
// covers reads only.
func TestSubmit_NotGated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.APIKey = "secret"
	handler := NewRsvpHandler(db, cfg)

	req := testutil.MakeRequest(t, "POST", "/rsvps", map[string]interface{}{
		"name":  "Ann",
		"email": "ann@x.com",
	}, nil)
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
}
