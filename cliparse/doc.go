// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

# Precedence

CLI flags override environment variables:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Settings:

  - DATABASE_URL (-d): PostgreSQL connection string (required)
  - PORT (-p): Server port (default: 8080)
  - API_KEY (-api-key): Shared secret for GET /rsvps (optional; unset
    leaves the list endpoint open, intended for local dev only)
  - DB_CONNECT_TIMEOUT (-connect-timeout): Seconds to wait when
    establishing a database connection (default: 10)

# Connection String

Config.DSN returns the database URL with the connect timeout folded in,
unless the URL already carries a connect_timeout parameter. Both
postgres:// URLs and key=value connection strings are supported.

The parsed Config struct is passed explicitly into the router and
handlers; no package reads the environment after startup.
*/
package cliparse
