// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the panchayat command line tool.

panchayat holds a village election in memory: voters register, each casts
one vote, and the tool prints ranked results, the winner and vote totals
across a region tree.

# Running an Election

A scenario comes from a file or a database:

	panchayat run -f gram-panchayat.yaml
	panchayat run -d file:scenario.db -o json --metrics

# Commands

  - run: hold the election and print the report
  - validate: screen voter records against the scenario rules
  - regions: print region tree totals
  - init-db: create the scenario tables in a database

# Configuration

Every command accepts the same flags, with environment fallbacks:

  - PANCHAYAT_SCENARIO (-f): scenario file
  - DATABASE_URL (-d): scenario database
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PANCHAYAT_FORMAT (-o): text or json (default: text)
  - PANCHAYAT_MIN_AGE (--min-age): minimum voter age override
  - PANCHAYAT_LOG_LEVEL (--log-level): log level (default: info)

# Architecture

  - election: in-memory election state and vote casting
  - validate: voter validation from declarative rules
  - region: region tree aggregation
  - tally: pure vote-count updates
  - scenario, db: scenario sources
  - runner: drives a scenario through an election
  - report, metrics: output
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
