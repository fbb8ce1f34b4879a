// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema reconciliation and transaction scoping.

# Schema Reconciliation

Reconcile brings the rsvps table to the current shape on every startup:

	if err := db.Reconcile(conn); err != nil {
		log.Fatal(err)
	}

It creates the table when absent, and otherwise diffs the observed columns
and constraints against the desired shape and applies the minimal DDL, in a
fixed order:

 1. rename attending -> coming (preserves data from the first revision)
 2. drop message (superseded)
 3. add allergies, transport_assist (with defaults)
 4. drop the legacy email-only unique constraint
 5. add the (name, email) unique constraint

Every step is idempotent, so re-running Reconcile on a current table issues
no DDL at all. The pass runs inside a single transaction; a DDL failure
rolls back and surfaces, which callers treat as fatal at startup.

This is deliberately not a migration framework: there is no version table
and no rollback chain, just one reconcile pass against the live shape.

# Transactions

WithTx scopes a function to one transaction:

	err := db.WithTx(conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(...)
		return err
	})

Commit on nil return, rollback on error, and the original error is always
the one surfaced.

# Current Shape

	rsvps (
		id               SERIAL PRIMARY KEY,
		name             VARCHAR(255) NOT NULL,
		email            VARCHAR(255) NOT NULL,
		coming           BOOLEAN DEFAULT true,
		allergies        VARCHAR(500),
		transport_assist BOOLEAN DEFAULT false,
		created_at       TIMESTAMPTZ DEFAULT now(),
		UNIQUE (name, email)
	)
*/
package db
