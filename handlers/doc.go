// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints of the RSVP API.

# RSVP Handler

RsvpHandler owns both endpoints over the rsvps table:

	handler := handlers.NewRsvpHandler(db, cfg)

Submit (POST /rsvps) parses and validates the body, then upserts through
the store. The response reports updated=false on a first submission and
updated=true when an existing (name, email) record was replaced. The
endpoint is public.

List (GET /rsvps) consults the API-key gate first, then returns every
record newest-first.

# Status Mapping

Errors map onto HTTP statuses by kind:

  - malformed body or failed validation: 400
  - gate denial: 401
  - unique-constraint violation: 409
  - anything else from the database: 500

Database errors are logged server-side; clients get a generic message.
*/
package handlers
