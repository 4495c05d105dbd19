package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS trains (
		id             SERIAL PRIMARY KEY,
		route          TEXT    NOT NULL,
		no_of_seats    INTEGER NOT NULL CHECK (no_of_seats >= 0),
		departure_time TIME    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id           SERIAL PRIMARY KEY,
		train_id     INTEGER NOT NULL REFERENCES trains(id) ON DELETE CASCADE,
		from_station TEXT    NOT NULL,
		to_station   TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id        SERIAL PRIMARY KEY,
		ticket_id INTEGER NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
		age       INTEGER NOT NULL CHECK (age >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS tickets_train_id_idx ON tickets (train_id)`,
	`CREATE INDEX IF NOT EXISTS passengers_ticket_id_idx ON passengers (ticket_id)`,
}

// Migrate ensures all required tables exist
func Migrate(ctx context.Context, db *sql.DB) error {
	log.Info().Msg("Checking database schema...")

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}

	log.Info().Int("statements", len(schema)).Msg("Database schema up to date")
	return nil
}
