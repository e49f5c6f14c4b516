// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Request types

type SurveyOptionRequest struct {
	OptionText    string `json:"option_text"`
	PreferredRank *int   `json:"preferred_rank,omitempty"`
}

type CreateSurveyRequest struct {
	Topic               string                `json:"topic"`
	NumberOfRespondents int                   `json:"number_of_respondents"`
	RespondentType      string                `json:"respondent_type"`
	Options             []SurveyOptionRequest `json:"options"`
	Distribution        string                `json:"distribution,omitempty"`
}

type AddOptionRequest = SurveyOptionRequest

type CalculateOutcomeRequest struct {
	Distribution string `json:"distribution,omitempty"`
}

// Response types

type SurveyOption struct {
	OptionText           string `json:"option_text"`
	PreferredOutcomeRank *int   `json:"preferred_outcome_rank,omitempty"`
	NumberOfVotes        int    `json:"number_of_votes"`
}

type SurveyResult struct {
	ID                  string         `json:"id"`
	Topic               string         `json:"topic"`
	NumberOfRespondents int            `json:"number_of_respondents"`
	RespondentType      string         `json:"respondent_type"`
	CreatedOn           time.Time      `json:"created_on"`
	TotalVotes          int            `json:"total_votes"`
	Options             []SurveyOption `json:"options"`
}

type SurveySummary struct {
	ID                  string    `json:"id"`
	Topic               string    `json:"topic"`
	NumberOfRespondents int       `json:"number_of_respondents"`
	RespondentType      string    `json:"respondent_type"`
	CreatedOn           time.Time `json:"created_on"`
	OptionCount         int       `json:"option_count"`
}

type ListSurveysResponse struct {
	Surveys []SurveySummary `json:"surveys"`
	Count   int             `json:"count"`
}

type SurveyPreviewResponse struct {
	Topic       string `json:"topic"`
	Respondents string `json:"respondents"` // e.g. "1,000 Developers"
	OptionCount int    `json:"option_count"`
	Leader      string `json:"leader,omitempty"`
	LeaderVotes string `json:"leader_votes,omitempty"`
	Age         string `json:"age"` // e.g. "3 minutes ago"
}

type SurveyEvent struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	OccurredAt  time.Time       `json:"occurred_at"`
	PublishedAt *time.Time      `json:"published_at,omitempty"`
}

type SurveyEventsResponse struct {
	SurveyID string        `json:"survey_id"`
	Events   []SurveyEvent `json:"events"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
