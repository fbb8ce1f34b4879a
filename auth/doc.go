// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth decides whether a request may read the RSVP list.

# API Key Gate

The gate holds an optional shared secret, taken from API_KEY at startup:

	gate := auth.NewGate(cfg.APIKey)
	if err := gate.Authorize(r.Header.Get("X-API-Key")); err != nil {
		// 401
	}

With no secret configured the gate is open and every request passes; this
is intended for local development only. With a secret configured, the
presented key must match exactly. Matching uses hmac.Equal, so timing does
not leak how much of a guess was right.

Only GET /rsvps consults the gate. Submissions come from the public
frontend form and are deliberately ungated.
*/
package auth
