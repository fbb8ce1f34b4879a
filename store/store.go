// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/englajimmy/rsvp-api/db"
	"github.com/englajimmy/rsvp-api/models"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The upsert path absorbs conflicts itself, but any plain insert
// against rsvps (or users) surfaces one of these, and callers translate it
// into a client-facing conflict rather than a server fault.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// RsvpStore reads and writes the rsvps table. Each call runs in its own
// transaction; there is no shared state between calls.
type RsvpStore struct {
	db *sql.DB
}

func New(db *sql.DB) *RsvpStore {
	return &RsvpStore{db: db}
}

// One atomic statement: the database decides between the insert branch and
// the conflict branch, and xmax = 0 tells us which one it took. A separate
// existence check would race with concurrent submissions for the same key.
const submitSQL = `
	INSERT INTO rsvps (name, email, coming, allergies, transport_assist, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (name, email) DO UPDATE SET
		coming = EXCLUDED.coming,
		allergies = EXCLUDED.allergies,
		transport_assist = EXCLUDED.transport_assist,
		created_at = now()
	RETURNING id, (xmax = 0) AS inserted
`

// Submit upserts an RSVP keyed by (name, email). A first submission inserts
// and returns created=true; a resubmission overwrites every mutable field
// (last write wins, created_at refreshed) and returns created=false. The
// request must already be validated.
func (s *RsvpStore) Submit(req models.SubmitRsvpRequest) (id int, created bool, err error) {
	err = db.WithTx(s.db, func(tx *sql.Tx) error {
		return tx.QueryRow(
			submitSQL,
			req.Name, req.Email, req.Coming, req.Allergies, req.TransportAssist,
		).Scan(&id, &created)
	})
	if err != nil {
		return 0, false, fmt.Errorf("submit rsvp: %w", err)
	}
	return id, created, nil
}

// ListAll returns every RSVP, most recently written first.
func (s *RsvpStore) ListAll() ([]models.Rsvp, error) {
	rsvps := []models.Rsvp{}

	err := db.WithTx(s.db, func(tx *sql.Tx) error {
		rows, err := tx.Query(`
			SELECT id, name, email, coming, allergies, transport_assist, created_at
			FROM rsvps
			ORDER BY created_at DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r models.Rsvp
			if err := rows.Scan(
				&r.ID,
				&r.Name,
				&r.Email,
				&r.Coming,
				&r.Allergies,
				&r.TransportAssist,
				&r.CreatedAt,
			); err != nil {
				return err
			}
			rsvps = append(rsvps, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	return rsvps, nil
}
