// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists survey aggregates.
//
// SQLStore writes a survey, its options and any pending domain events in a
// single transaction. Events land in the survey_event table as unpublished
// outbox rows; the aggregate's pending list is cleared only after commit.
package store
