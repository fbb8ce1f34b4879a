// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Constraint names follow Postgres defaults, which is also what older
// deployments of this table ended up with.
const (
	emailKeyName     = "rsvps_email_key"
	nameEmailKeyName = "rsvps_name_email_key"
)

const createRsvpsSQL = `
CREATE TABLE IF NOT EXISTS rsvps (
    id               SERIAL PRIMARY KEY,
    name             VARCHAR(255) NOT NULL,
    email            VARCHAR(255) NOT NULL,
    coming           BOOLEAN DEFAULT true,
    allergies        VARCHAR(500),
    transport_assist BOOLEAN DEFAULT false,
    created_at       TIMESTAMPTZ DEFAULT now(),
    UNIQUE (name, email)
);
`

// observedSchema is the live shape of the rsvps table: which columns exist
// and which uniqueness constraints are attached.
type observedSchema struct {
	columns     map[string]bool
	constraints map[string]bool
}

// planMigration computes the DDL needed to bring an observed rsvps table to
// the current shape. The order is fixed: rename, then drop, then add, then
// constraint changes. The rename must come first so that no later statement
// sees the legacy attending column, and renaming (rather than dropping and
// re-adding) preserves existing answers. An up-to-date table yields an empty
// plan.
func planMigration(obs observedSchema) []string {
	var plan []string

	if obs.columns["attending"] && !obs.columns["coming"] {
		plan = append(plan, "ALTER TABLE rsvps RENAME COLUMN attending TO coming")
	}

	// message was superseded by allergies/transport_assist; its data is not
	// carried over
	if obs.columns["message"] {
		plan = append(plan, "ALTER TABLE rsvps DROP COLUMN IF EXISTS message")
	}

	if !obs.columns["allergies"] {
		plan = append(plan, "ALTER TABLE rsvps ADD COLUMN IF NOT EXISTS allergies VARCHAR(500)")
	}

	if !obs.columns["transport_assist"] {
		plan = append(plan, "ALTER TABLE rsvps ADD COLUMN IF NOT EXISTS transport_assist BOOLEAN DEFAULT false")
	}

	// One RSVP per (name, email): the email-only key from the first schema
	// revision has to go before the composite key is meaningful
	if obs.constraints[emailKeyName] {
		plan = append(plan, "ALTER TABLE rsvps DROP CONSTRAINT "+emailKeyName)
	}

	if !obs.constraints[nameEmailKeyName] {
		plan = append(plan, "ALTER TABLE rsvps ADD CONSTRAINT "+nameEmailKeyName+" UNIQUE (name, email)")
	}

	return plan
}

// inspect reads the live column and constraint sets for the rsvps table.
func inspect(tx *sql.Tx) (observedSchema, error) {
	obs := observedSchema{
		columns:     make(map[string]bool),
		constraints: make(map[string]bool),
	}

	rows, err := tx.Query(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'rsvps'
	`)
	if err != nil {
		return obs, fmt.Errorf("inspect columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return obs, fmt.Errorf("scan column name: %w", err)
		}
		obs.columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return obs, fmt.Errorf("inspect columns: %w", err)
	}

	conRows, err := tx.Query(`
		SELECT conname
		FROM pg_constraint
		WHERE conrelid = 'rsvps'::regclass
	`)
	if err != nil {
		return obs, fmt.Errorf("inspect constraints: %w", err)
	}
	defer conRows.Close()

	for conRows.Next() {
		var name string
		if err := conRows.Scan(&name); err != nil {
			return obs, fmt.Errorf("scan constraint name: %w", err)
		}
		obs.constraints[name] = true
	}
	if err := conRows.Err(); err != nil {
		return obs, fmt.Errorf("inspect constraints: %w", err)
	}

	return obs, nil
}

// Reconcile brings the rsvps table to the current schema, creating it if it
// doesn't exist and migrating it in place if an older revision left it in a
// legacy shape. Safe to call on every startup; a current table results in
// zero DDL. The whole pass runs in one transaction, so a failed step leaves
// the previous shape intact.
func Reconcile(db *sql.DB) error {
	return WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(createRsvpsSQL); err != nil {
			return fmt.Errorf("create rsvps table: %w", err)
		}

		obs, err := inspect(tx)
		if err != nil {
			return err
		}

		for _, stmt := range planMigration(obs) {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("apply %q: %w", stmt, err)
			}
		}
		return nil
	})
}
