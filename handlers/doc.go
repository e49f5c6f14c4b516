// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the fake survey generator.

# Handler Types

  - SurveyHandler: create, list and fetch surveys, add options, recalculate outcomes
  - ResultsHandler: preview cards and the persisted event log

Both are built from a store.Store:

	st := store.NewSQLStore(db)
	surveyHandler := handlers.NewSurveyHandler(st)

# Survey Flow

	POST /surveys              → CreateSurvey (options and outcome in one request)
	POST /surveys/{id}/options → AddOption (votes unchanged until recalculated)
	POST /surveys/{id}/outcome → CalculateOutcome

The distribution is "random" unless the request asks for "one_sided", in
which case every vote goes to the option ranked 1 (or the first option).

# Errors

Validation failures from package survey map to 400, store.ErrNotFound to 404,
store.ErrConflict (a concurrent write won) to 409 and anything else to 500
after being logged.
*/
package handlers
