// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fake survey generator API server.

The server builds fake surveys: a topic, a number of respondents, a respondent
type and an ordered list of options. Votes are spread across the options
either at random or all onto a single preferred option.

# Starting the Server

With no configuration the server listens on 3318 and stores surveys in a local
SQLite file:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=pgx DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - DATABASE_URL (-d): connection string, required unless sqlite
  - CORS_ORIGINS (-cors): comma separated allowed origins (default: *)
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - LOG_FORMAT (-log-format): text or json

Variables may also come from a .env file (-env to pick another path).

# Package Structure

  - survey: survey aggregate, options and vote distribution strategies
  - store: SQL persistence of surveys and their pending events
  - db: driver selection, connection and schema
  - handlers: HTTP request handlers
  - router: chi routes, CORS and recovery
  - middleware: logging and JSON helpers
  - cliparse: flag, env and dotenv configuration
  - models: JSON request and response types
  - testutil: test helpers

# Graceful Shutdown

SIGINT or SIGTERM drains in-flight requests before the process exits.
*/
package main
