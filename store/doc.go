// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements persistence for RSVP records.

# Submitting

Submit is an atomic upsert keyed by (name, email):

	id, created, err := store.Submit(req)

The insert-or-update decision happens inside a single Postgres statement
(ON CONFLICT ... DO UPDATE), with RETURNING (xmax = 0) reporting which
branch was taken. xmax is zero on a freshly inserted row version and
non-zero on an updated one, so created=true means first submission and
created=false means the earlier record for that guest was replaced.
Because the statement is atomic, concurrent submissions for the same
(name, email) serialize inside the database: exactly one wins the insert,
the rest become replacements. No read-then-write step exists to race.

A replacement overwrites every mutable field (coming, allergies,
transport_assist) and refreshes created_at; it is a full overwrite, not
a partial patch.

# Listing

	rsvps, err := store.ListAll()

Returns all records ordered by created_at descending, so the most recent
submission or resubmission comes first.

# Conflict Detection

IsUniqueViolation recognizes Postgres error 23505 so callers can map a
duplicate-key failure from a non-upserting write to HTTP 409 instead of a
500.
*/
package store
