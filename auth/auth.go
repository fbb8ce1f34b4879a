// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidAPIKey = errors.New("invalid or missing API key")

// Gate makes the admit/deny decision for protected endpoints against an
// optional shared secret.
type Gate struct {
	key string
}

// NewGate returns a gate for the configured key. An empty key means open
// mode: every request is admitted (local dev only).
func NewGate(key string) *Gate {
	return &Gate{key: key}
}

// Open reports whether the gate admits everything.
func (g *Gate) Open() bool {
	return g.key == ""
}

// Authorize allows the request when no key is configured, or when the
// presented key matches exactly. The comparison is constant-time.
func (g *Gate) Authorize(presented string) error {
	if g.key == "" {
		return nil
	}
	if presented == "" || !hmac.Equal([]byte(presented), []byte(g.key)) {
		return ErrInvalidAPIKey
	}
	return nil
}
