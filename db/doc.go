// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open accepts three drivers:

  - sqlite: modernc.org/sqlite (default, pure Go)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, err := db.Open(ctx, db.DriverSQLite, "")

An empty DSN is only allowed for sqlite and falls back to DefaultSQLiteDSN.
SQLite connections are limited to a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DriverPostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - survey: topic, respondents, respondent type, creation time
  - survey_option: options keyed by (survey_id, position)
  - survey_event: domain event outbox

# Relationships

	survey 1──* survey_option
	survey 1──* survey_event

All foreign keys use ON DELETE CASCADE. Timestamps are stored as unix
nanoseconds so both dialects round-trip exactly.
*/
package db
