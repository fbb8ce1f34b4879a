// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the RSVP API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health - Liveness check, no storage access
	POST /rsvps  - Submit an RSVP (public)
	GET  /rsvps  - List all RSVPs, newest first (X-API-Key when configured)
	GET  /       - Service banner

The RSVP endpoints are wrapped with request logging; the health check is
left bare so probes stay out of the logs.
*/
package router
