// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to a scenario database and verifies the connection
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if dbType == TypeSQLite {
		// Every connection to ":memory:" is a separate database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// CreateSchema creates all tables a scenario is read from.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema only uses types shared by SQLite and PostgreSQL
const schema = `
-- Scenario label
CREATE TABLE IF NOT EXISTS scenario (
    name TEXT NOT NULL
);

-- Candidates, in ballot order
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    party TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL DEFAULT 0
);

-- Voter records; id and age may be missing
CREATE TABLE IF NOT EXISTS voter (
    seq INTEGER PRIMARY KEY,
    id TEXT,
    name TEXT,
    age REAL
);

-- Ballots, cast in seq order
CREATE TABLE IF NOT EXISTS ballot (
    seq INTEGER PRIMARY KEY,
    voter_id TEXT NOT NULL,
    candidate_id TEXT NOT NULL
);

-- Validation rules (first row wins); required_fields is comma separated
CREATE TABLE IF NOT EXISTS validation_rule (
    min_age REAL NOT NULL,
    required_fields TEXT NOT NULL DEFAULT ''
);

-- Region tree as an adjacency list
CREATE TABLE IF NOT EXISTS region (
    id INTEGER PRIMARY KEY,
    parent_id INTEGER,
    name TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_region_parent_id ON region(parent_id);
`
