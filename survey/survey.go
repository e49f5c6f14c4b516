// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Survey is the aggregate root: one fake survey definition plus its computed
// outcome. It is not safe for concurrent mutation.
type Survey struct {
	id                  string
	topic               string
	numberOfRespondents int
	respondentType      string
	createdOn           time.Time
	options             []Option
	events              []Event
	version             int64 // 0 until first saved
}

// Result is the read-only view of a survey and its vote counts.
type Result struct {
	ID                  string
	Topic               string
	NumberOfRespondents int
	RespondentType      string
	CreatedOn           time.Time
	Options             []Option
}

// New creates a survey with no options.
func New(topic string, numberOfRespondents int, respondentType string) (*Survey, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, invalid("topic", "topic is required")
	}
	if numberOfRespondents <= 0 {
		return nil, invalid("number_of_respondents", "number of respondents must be greater than zero, got %d", numberOfRespondents)
	}
	if strings.TrimSpace(respondentType) == "" {
		return nil, invalid("respondent_type", "respondent type is required")
	}

	s := &Survey{
		id:                  uuid.NewString(),
		topic:               topic,
		numberOfRespondents: numberOfRespondents,
		respondentType:      respondentType,
		createdOn:           time.Now().UTC(),
		options:             []Option{},
	}
	s.record(EventCreated, s.createdOn, map[string]any{
		"topic":                 topic,
		"number_of_respondents": numberOfRespondents,
		"respondent_type":       respondentType,
	})
	return s, nil
}

// Restore rebuilds a survey from persisted state. No events are recorded and
// the stored state is trusted as-is.
func Restore(id, topic string, numberOfRespondents int, respondentType string, createdOn time.Time, options []Option) *Survey {
	s := &Survey{
		id:                  id,
		topic:               topic,
		numberOfRespondents: numberOfRespondents,
		respondentType:      respondentType,
		createdOn:           createdOn,
		options:             make([]Option, 0, len(options)),
	}
	for _, opt := range options {
		s.options = append(s.options, opt.clone())
	}
	return s
}

func (s *Survey) ID() string               { return s.id }
func (s *Survey) Topic() string            { return s.topic }
func (s *Survey) NumberOfRespondents() int { return s.numberOfRespondents }
func (s *Survey) RespondentType() string   { return s.respondentType }
func (s *Survey) CreatedOn() time.Time     { return s.createdOn }

// Version is the stored revision this survey was loaded from or last saved
// as. Zero means it was never saved.
func (s *Survey) Version() int64 { return s.version }

// MarkSaved records a committed revision and drops the pending events that
// went with it.
func (s *Survey) MarkSaved(version int64) {
	s.version = version
	s.ClearEvents()
}

// Options returns a copy of the options in insertion order.
func (s *Survey) Options() []Option {
	out := make([]Option, len(s.options))
	for i, opt := range s.options {
		out[i] = opt.clone()
	}
	return out
}

// AddOption appends an option. A preferred rank must lie in
// [1, optionCount] counting the new option, and must not already be taken.
func (s *Survey) AddOption(text string, preferredRank *int) error {
	if strings.TrimSpace(text) == "" {
		return invalid("option_text", "option text is required")
	}

	opt := Option{Text: text}
	if preferredRank != nil {
		rank := *preferredRank
		maxRank := len(s.options) + 1
		if rank < 1 || rank > maxRank {
			return invalid("preferred_rank", "preferred rank %d is out of range [1, %d]", rank, maxRank)
		}
		for _, existing := range s.options {
			if existing.hasRank(rank) {
				return invalid("preferred_rank", "preferred rank %d is already assigned to %q", rank, existing.Text)
			}
		}
		opt.PreferredRank = &rank
	}

	s.options = append(s.options, opt)

	payload := map[string]any{
		"option_text": text,
		"position":    len(s.options) - 1,
	}
	if opt.PreferredRank != nil {
		payload["preferred_rank"] = *opt.PreferredRank
	}
	s.record(EventOptionAdded, time.Now().UTC(), payload)
	return nil
}

// CalculateOutcome distributes the respondents across the options with the
// given strategy and stores the counts on the options. Previous counts are
// overwritten.
func (s *Survey) CalculateOutcome(strategy VoteDistributionStrategy) (Result, error) {
	if len(s.options) == 0 {
		return Result{}, invalid("options", "cannot calculate the outcome of a survey with no options")
	}
	if strategy == nil {
		return Result{}, invalid("distribution", "a vote distribution strategy is required")
	}

	counts := strategy.Distribute(len(s.options), s.numberOfRespondents)
	if len(counts) != len(s.options) {
		return Result{}, invalid("distribution", "strategy returned %d counts for %d options", len(counts), len(s.options))
	}

	for i := range s.options {
		s.options[i].Votes = counts[i]
	}

	votes := make([]int, len(counts))
	copy(votes, counts)
	s.record(EventOutcomeCalculated, time.Now().UTC(), map[string]any{
		"distribution": strategyName(strategy),
		"votes":        votes,
	})

	return s.Result(), nil
}

// Result returns the current view without recalculating.
func (s *Survey) Result() Result {
	return Result{
		ID:                  s.id,
		Topic:               s.topic,
		NumberOfRespondents: s.numberOfRespondents,
		RespondentType:      s.respondentType,
		CreatedOn:           s.createdOn,
		Options:             s.Options(),
	}
}

// PreferredOptionIndex is the position of the option ranked 1, or 0.
func (s *Survey) PreferredOptionIndex() int {
	for i, opt := range s.options {
		if opt.hasRank(1) {
			return i
		}
	}
	return 0
}

// TotalVotes sums the vote counts of all options.
func (r Result) TotalVotes() int {
	total := 0
	for _, opt := range r.Options {
		total += opt.Votes
	}
	return total
}

// Leader returns the option with the most votes; the earliest wins ties.
func (r Result) Leader() (Option, bool) {
	if len(r.Options) == 0 {
		return Option{}, false
	}
	best := r.Options[0]
	for _, opt := range r.Options[1:] {
		if opt.Votes > best.Votes {
			best = opt
		}
	}
	return best, true
}
