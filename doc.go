// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Englajimmy RSVP API server.

The service backs a wedding RSVP page: guests submit their answer through
a public form, and the couple reads the collected answers back with an API
key.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..."

A .env file in the working directory is loaded first, for local runs.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - API_KEY (-api-key): Shared secret protecting GET /rsvps; unset leaves
    the list open (dev only)
  - DB_CONNECT_TIMEOUT (-connect-timeout): Connection timeout in seconds
    (default: 10)

# Startup Sequence

Config parse, connect, ping, then db.Reconcile brings the rsvps table to
the current shape (creating or migrating it in place). Any failure along
that path exits before the server binds; the process never serves with a
half-migrated table.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for RSVP submit and list
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and validation
  - auth: API-key gate for the list endpoint
  - db: Schema reconciliation and transaction scoping
  - store: RSVP persistence (atomic upsert, ordered reads)
  - cliparse: Configuration parsing

See package documentation for each component. cmd/seed-users is a one-off
loader for sample users data.
*/
package main
