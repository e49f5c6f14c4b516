// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres" // lib/pq
	DriverPgx      Driver = "pgx"      // jackc/pgx stdlib
)

// DefaultSQLiteDSN is used when the sqlite driver is selected without a URL
const DefaultSQLiteDSN = "file:fake_survey.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// ParseDriver validates a driver name from configuration
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(name); d {
	case DriverSQLite, DriverPostgres, DriverPgx:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database type %q (want sqlite, postgres or pgx)", name)
	}
}

// Open connects, pings and creates the schema.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		if driver != DriverSQLite {
			return nil, fmt.Errorf("database URL required for %s", driver)
		}
		dsn = DefaultSQLiteDSN
	}

	conn, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer keeps SQLite out of "database is locked" errors.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	if err := CreateSchema(ctx, conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
