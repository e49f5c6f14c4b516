// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/fake-survey-generator/survey"
)

var (
	ErrNotFound = errors.New("survey not found")
	// ErrConflict means the survey changed since it was loaded
	ErrConflict = errors.New("survey was modified concurrently")
)

// Store persists survey aggregates together with their pending events.
type Store interface {
	// Save writes the survey and its pending events in one transaction.
	// It returns ErrConflict when the stored version moved on.
	Save(ctx context.Context, s *survey.Survey) error
	// Get loads a survey by ID
	Get(ctx context.Context, id string) (*survey.Survey, error)
	// List returns the most recent surveys first
	List(ctx context.Context, limit int) ([]Summary, error)
	// ListEvents returns the outbox rows of a survey in write order
	ListEvents(ctx context.Context, surveyID string) ([]EventRecord, error)
	// Ping checks the database connection
	Ping(ctx context.Context) error
}

// Summary is a list row
type Summary struct {
	ID                  string
	Topic               string
	NumberOfRespondents int
	RespondentType      string
	CreatedOn           time.Time
	OptionCount         int
}

// EventRecord is a persisted outbox row
type EventRecord struct {
	ID          string
	SurveyID    string
	Type        string
	Payload     json.RawMessage
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// SQLStore implements Store on database/sql. Queries use $n placeholders,
// which lib/pq, pgx and modernc sqlite all accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Save(ctx context.Context, sv *survey.Survey) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Topic, respondents and type never change after creation. Saving a
	// stale copy fails with ErrConflict and leaves the stored options alone.
	var res sql.Result
	next := sv.Version() + 1
	if sv.Version() == 0 {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO survey (id, topic, number_of_respondents, respondent_type, created_on, version)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, sv.ID(), sv.Topic(), sv.NumberOfRespondents(), sv.RespondentType(), sv.CreatedOn().UnixNano(), next)
	} else {
		res, err = tx.ExecContext(ctx, `
			UPDATE survey SET version = $1
			WHERE id = $2 AND version = $3
		`, next, sv.ID(), sv.Version())
	}
	if err != nil {
		return fmt.Errorf("failed to write survey: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check survey version: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("save survey %s at version %d: %w", sv.ID(), sv.Version(), ErrConflict)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM survey_option WHERE survey_id = $1`, sv.ID())
	if err != nil {
		return fmt.Errorf("failed to clear options: %w", err)
	}

	for i, opt := range sv.Options() {
		var rank sql.NullInt64
		if opt.PreferredRank != nil {
			rank = sql.NullInt64{Int64: int64(*opt.PreferredRank), Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO survey_option (survey_id, position, option_text, preferred_outcome_rank, number_of_votes)
			VALUES ($1, $2, $3, $4, $5)
		`, sv.ID(), i, opt.Text, rank, opt.Votes)
		if err != nil {
			return fmt.Errorf("failed to insert option %d: %w", i, err)
		}
	}

	events := sv.PendingEvents()
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s event: %w", e.Type, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO survey_event (id, survey_id, event_type, payload, occurred_at)
			VALUES ($1, $2, $3, $4, $5)
		`, e.ID, e.SurveyID, e.Type, string(payload), e.OccurredAt.UnixNano())
		if err != nil {
			return fmt.Errorf("failed to append %s event: %w", e.Type, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit survey: %w", err)
	}

	sv.MarkSaved(next)
	slog.Debug("survey saved", "survey_id", sv.ID(), "version", next, "events", len(events))
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*survey.Survey, error) {
	var (
		topic          string
		respondents    int
		respondentType string
		createdOn      int64
		version        int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT topic, number_of_respondents, respondent_type, created_on, version
		FROM survey
		WHERE id = $1
	`, id).Scan(&topic, &respondents, &respondentType, &createdOn, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query survey: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT option_text, preferred_outcome_rank, number_of_votes
		FROM survey_option
		WHERE survey_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []survey.Option{}
	for rows.Next() {
		var opt survey.Option
		var rank sql.NullInt64
		if err := rows.Scan(&opt.Text, &rank, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		if rank.Valid {
			r := int(rank.Int64)
			opt.PreferredRank = &r
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	sv := survey.Restore(id, topic, respondents, respondentType, fromUnixNano(createdOn), options)
	sv.MarkSaved(version)
	return sv, nil
}

func (s *SQLStore) List(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.topic, s.number_of_respondents, s.respondent_type, s.created_on,
		       (SELECT COUNT(*) FROM survey_option o WHERE o.survey_id = s.id)
		FROM survey s
		ORDER BY s.created_on DESC, s.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		var createdOn int64
		if err := rows.Scan(&sum.ID, &sum.Topic, &sum.NumberOfRespondents, &sum.RespondentType, &createdOn, &sum.OptionCount); err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		sum.CreatedOn = fromUnixNano(createdOn)
		summaries = append(summaries, sum)
	}

	return summaries, rows.Err()
}

func (s *SQLStore) ListEvents(ctx context.Context, surveyID string) ([]EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, survey_id, event_type, payload, occurred_at, published_at
		FROM survey_event
		WHERE survey_id = $1
		ORDER BY seq
	`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []EventRecord{}
	for rows.Next() {
		var e EventRecord
		var payload []byte
		var occurredAt int64
		var publishedAt sql.NullInt64
		if err := rows.Scan(&e.ID, &e.SurveyID, &e.Type, &payload, &occurredAt, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Payload = json.RawMessage(payload)
		e.OccurredAt = fromUnixNano(occurredAt)
		if publishedAt.Valid {
			t := fromUnixNano(publishedAt.Int64)
			e.PublishedAt = &t
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
