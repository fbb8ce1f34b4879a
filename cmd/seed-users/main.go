// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command seed-users loads sample rows into the users table. One-off tool
// for exercising a freshly provisioned database; it does not touch rsvps.
package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/englajimmy/rsvp-api/cliparse"
	"github.com/englajimmy/rsvp-api/db"
)

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
    id          SERIAL PRIMARY KEY,
    email       VARCHAR(255) UNIQUE NOT NULL,
    name        VARCHAR(255) NOT NULL,
    is_active   BOOLEAN DEFAULT true,
    created_at  TIMESTAMPTZ DEFAULT now()
);
`

type sampleUser struct {
	email    string
	name     string
	isActive bool
}

var samples = []sampleUser{
	{email: "alice@example.com", name: "Alice", isActive: true},
	{email: "bob@example.com", name: "Bob", isActive: true},
	{email: "charlie@example.com", name: "Charlie", isActive: false},
}

func main() {
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	err = db.WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(createUsersSQL); err != nil {
			return err
		}
		for _, u := range samples {
			if _, err := tx.Exec(
				`INSERT INTO users (email, name, is_active) VALUES ($1, $2, $3)`,
				u.email, u.name, u.isActive,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("seeding users failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Inserted sample users", "count", len(samples))
}
