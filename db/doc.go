// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db reads election scenarios from SQLite or PostgreSQL.

The database is an input source only. Elections run in memory and nothing
is written back.

# Connecting

	conn, err := db.Open(ctx, db.TypeSQLite, "file:scenario.db")
	defer conn.Close()

Both drivers are registered by this package (modernc.org/sqlite and
github.com/lib/pq).

# Schema

CreateSchema creates the input tables:

  - scenario: name
  - candidate: id, name, party, position
  - voter: seq, id, name, age (id and age nullable)
  - ballot: seq, voter_id, candidate_id
  - validation_rule: min_age, required_fields (comma separated)
  - region: id, parent_id, name, votes, position

# Loading

	s, err := db.LoadScenario(ctx, conn)

Candidates are ordered by position, voters and ballots by seq. NULL voter
columns become absent record fields, so the validator reports them as
missing. The region table must have at most one row without a parent.
*/
package db
