// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits, mirrored by the rsvps table definition
const (
	MaxNameLen      = 255
	MaxAllergiesLen = 500
)

// Request types

type SubmitRsvpRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Coming          *bool   `json:"coming"`    // nil means not provided; defaults to true
	Allergies       *string `json:"allergies"` // optional free text
	TransportAssist bool    `json:"transport_assist"`
}

// Validate checks the request fields and normalizes them in place: the name
// is trimmed of surrounding whitespace and a missing coming flag resolves to
// true. The returned error message is safe to show to the client.
func (r *SubmitRsvpRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(r.Name) > MaxNameLen {
		return errors.New("name must be at most 255 characters")
	}

	if r.Email == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return errors.New("email is not a valid address")
	}

	if r.Allergies != nil && utf8.RuneCountInString(*r.Allergies) > MaxAllergiesLen {
		return errors.New("allergies must be at most 500 characters")
	}

	if r.Coming == nil {
		coming := true
		r.Coming = &coming
	}

	return nil
}

// Response types

type SubmitRsvpResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Updated bool   `json:"updated"`
}

// Domain types

type Rsvp struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Coming          bool      `json:"coming"`
	Allergies       *string   `json:"allergies"`
	TransportAssist bool      `json:"transport_assist"`
	CreatedAt       time.Time `json:"created_at"`
}

// User is a row in the users table, maintained by cmd/seed-users.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
