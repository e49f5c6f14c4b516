// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements the fake survey outcome engine.

# Surveys

A Survey holds a topic, a number of respondents, a respondent type and an
ordered list of options:

	s, err := survey.New("Tabs or spaces?", 1000, "Developers")
	err = s.AddOption("Tabs", nil)
	err = s.AddOption("Spaces", &rank)

Options keep insertion order. A preferred rank is 1-based, unique within the
survey and must not exceed the option count including the option being added.

# Outcomes

CalculateOutcome spreads the respondents across the options:

	result, err := s.CalculateOutcome(survey.RandomDistribution{})

Two strategies exist:

  - RandomDistribution: random proportional split, every option gets at
    least one vote when there are enough respondents
  - OneSidedDistribution: every vote goes to one option

Both always return counts that sum to the number of respondents.

# Errors

Every rule violation is a *ValidationError and matches ErrValidation:

	if errors.Is(err, survey.ErrValidation) { ... }

A rejected call never changes the survey.

# Events

Mutations record domain events (survey.created, survey.option_added,
survey.outcome_calculated). The persistence layer writes PendingEvents in the
same transaction as the survey and calls ClearEvents after commit.
*/
package survey
