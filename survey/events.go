// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"time"

	"github.com/google/uuid"
)

// Event types recorded by the aggregate
const (
	EventCreated           = "survey.created"
	EventOptionAdded       = "survey.option_added"
	EventOutcomeCalculated = "survey.outcome_calculated"
)

// Event is a domain event waiting to be written to the outbox.
type Event struct {
	ID         string
	Type       string
	SurveyID   string
	OccurredAt time.Time
	Payload    map[string]any
}

func (s *Survey) record(eventType string, at time.Time, payload map[string]any) {
	s.events = append(s.events, Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		SurveyID:   s.id,
		OccurredAt: at,
		Payload:    payload,
	})
}

// PendingEvents returns the events recorded since the last ClearEvents.
func (s *Survey) PendingEvents() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ClearEvents drops pending events. Call it only after they were persisted.
func (s *Survey) ClearEvents() {
	s.events = nil
}
