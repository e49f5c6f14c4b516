// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Precedence

CLI flags win over environment variables. Environment variables may be seeded
from a dotenv file (default .env, change with -env, disable with -env "");
variables already present in the process environment are never overwritten
by the file, and a missing file is not an error.

# Flags and Variables

	-p           PORT           Server port (default 3318)
	-t           DATABASE_TYPE  sqlite, postgres or pgx (default sqlite)
	-d           DATABASE_URL   Connection string (required unless sqlite)
	-cors        CORS_ORIGINS   Comma separated origins (default *)
	-log-level   LOG_LEVEL      debug, info, warn, error (default info)
	-log-format  LOG_FORMAT     text or json (default text)
*/
package cliparse
