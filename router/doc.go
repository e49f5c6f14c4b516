// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the fake survey generator API.

# Route Registration

NewRouter builds a chi router with request IDs, panic recovery and CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Surveys:

	POST /surveys                - Create a survey and calculate its outcome
	GET  /surveys                - Recent surveys (?limit=, max 100)
	GET  /surveys/{id}           - Survey with vote counts
	POST /surveys/{id}/options   - Add an option
	POST /surveys/{id}/outcome   - Recalculate votes (random or one_sided)
	GET  /surveys/{id}/preview   - Human-readable summary card
	GET  /surveys/{id}/events    - Persisted domain events

Handlers share one store.SQLStore built from the database handle.
*/
package router
