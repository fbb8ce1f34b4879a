// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the RSVP API.

# Request Validation

SubmitRsvpRequest carries its own validation:

	var req models.SubmitRsvpRequest
	if err := req.Validate(); err != nil {
		// err is a client-safe message
	}

Validate normalizes as it checks: the name is trimmed, and an omitted
"coming" field defaults to true. Limits match the table definition
(name 1-255 characters, allergies up to 500, email must parse as an
address).

# Domain Types

Rsvp mirrors a row of the rsvps table. Allergies is a pointer because the
column is nullable; it serializes as JSON null when absent.

User mirrors a row of the users table seeded by cmd/seed-users.
*/
package models
