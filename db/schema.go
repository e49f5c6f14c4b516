// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := schemaPostgres
	if driver == DriverSQLite {
		schema = schemaSQLite
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are unix nanoseconds in both dialects.

const schemaPostgres = `
-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    number_of_respondents INTEGER NOT NULL CHECK (number_of_respondents > 0),
    respondent_type TEXT NOT NULL,
    created_on BIGINT NOT NULL,
    version BIGINT NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_survey_created_on ON survey(created_on);

-- Options, ordered by position within a survey
CREATE TABLE IF NOT EXISTS survey_option (
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    option_text TEXT NOT NULL,
    preferred_outcome_rank INTEGER,
    number_of_votes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (survey_id, position)
);

-- Domain event outbox
CREATE TABLE IF NOT EXISTS survey_event (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    seq BIGSERIAL,
    event_type TEXT NOT NULL,
    payload JSONB NOT NULL,
    occurred_at BIGINT NOT NULL,
    published_at BIGINT
);

CREATE INDEX IF NOT EXISTS idx_survey_event_survey_id ON survey_event(survey_id);
CREATE INDEX IF NOT EXISTS idx_survey_event_unpublished ON survey_event(published_at) WHERE published_at IS NULL;
`

const schemaSQLite = `
PRAGMA foreign_keys=ON;

-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    number_of_respondents INTEGER NOT NULL CHECK (number_of_respondents > 0),
    respondent_type TEXT NOT NULL,
    created_on BIGINT NOT NULL,
    version BIGINT NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_survey_created_on ON survey(created_on);

-- Options, ordered by position within a survey
CREATE TABLE IF NOT EXISTS survey_option (
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    option_text TEXT NOT NULL,
    preferred_outcome_rank INTEGER,
    number_of_votes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (survey_id, position)
);

-- Domain event outbox
CREATE TABLE IF NOT EXISTS survey_event (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    event_type TEXT NOT NULL,
    payload TEXT NOT NULL,
    occurred_at BIGINT NOT NULL,
    published_at BIGINT
);

CREATE INDEX IF NOT EXISTS idx_survey_event_survey_id ON survey_event(survey_id);
`
