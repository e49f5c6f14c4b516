// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the API.

# Request Types

  - CreateSurveyRequest: topic, number_of_respondents, respondent_type, options, distribution
  - SurveyOptionRequest / AddOptionRequest: option_text, preferred_rank
  - CalculateOutcomeRequest: distribution ("random" or "one_sided")

# Response Types

  - SurveyResult: survey metadata, total_votes and per-option vote counts
  - ListSurveysResponse: recent SurveySummary rows
  - SurveyPreviewResponse: human-readable card for link previews
  - SurveyEventsResponse: persisted domain events of one survey
  - ErrorResponse: error, message

Domain state lives in package survey; these types only shape the wire format.
*/
package models
