package repository

import "fmt"

// schemaStatements creates all tables if they do not exist yet. Ownership is
// enforced in the schema: children cascade with their trip, plans cascade
// with their day, and an expense's day reference is nullified instead.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		destination TEXT NOT NULL,
		start_date  DATE NOT NULL,
		end_date    DATE NOT NULL,
		currency    TEXT NOT NULL,
		memo        TEXT,
		status      TEXT NOT NULL DEFAULT 'draft'
		            CHECK (status IN ('draft', 'active', 'done')),
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS days (
		id         TEXT PRIMARY KEY,
		trip_id    TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		day_no     INTEGER NOT NULL,
		date       DATE NOT NULL,
		title      TEXT,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (trip_id, day_no),
		UNIQUE (trip_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id             TEXT PRIMARY KEY,
		trip_id        TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		day_id         TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
		place_name     TEXT NOT NULL,
		start_min      INTEGER,
		end_min        INTEGER,
		detail         TEXT,
		map_url        TEXT,
		food_note      TEXT,
		transport_note TEXT,
		cost_estimate  BIGINT,
		sort_no        INTEGER NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id         TEXT PRIMARY KEY,
		trip_id    TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		day_id     TEXT REFERENCES days(id) ON DELETE SET NULL,
		item       TEXT NOT NULL,
		amount     BIGINT NOT NULL,
		currency   TEXT NOT NULL,
		category   TEXT,
		spent_at   TIMESTAMPTZ NOT NULL,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id               TEXT PRIMARY KEY,
		trip_id          TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		leg_type         TEXT NOT NULL DEFAULT 'multi'
		                 CHECK (leg_type IN ('outbound', 'inbound', 'multi')),
		leg_order        INTEGER NOT NULL,
		airline          TEXT NOT NULL,
		flight_no        TEXT NOT NULL,
		dep_airport      TEXT NOT NULL,
		arr_airport      TEXT NOT NULL,
		dep_airport_name TEXT,
		arr_airport_name TEXT,
		dep_time         TIMESTAMPTZ NOT NULL,
		arr_time         TIMESTAMPTZ NOT NULL,
		price            BIGINT,
		currency         TEXT NOT NULL,
		note             TEXT,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hotels (
		id              TEXT PRIMARY KEY,
		trip_id         TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		city            TEXT NOT NULL,
		checkin_date    DATE NOT NULL,
		checkout_date   DATE NOT NULL,
		confirmation_no TEXT,
		total_price     BIGINT,
		currency        TEXT NOT NULL,
		note            TEXT,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS app_meta (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates any missing tables
func EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %v", err)
		}
	}
	return nil
}
