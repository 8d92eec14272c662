// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/validate"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		Format:       cliparse.FormatText,
		LogLevel:     "error",
	}
}

// SampleScenario is the two candidate village election used across tests:
// V1 (25) votes C1 then tries again, V2 (17) is refused registration.
func SampleScenario() models.Scenario {
	return models.Scenario{
		Name: "Gram Panchayat 2026",
		Candidates: []election.Candidate{
			{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
			{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
		},
		Voters: []validate.Record{
			{"id": "V1", "name": "Mohan", "age": 25},
			{"id": "V2", "name": "Geeta", "age": 17},
		},
		Ballots: []models.Ballot{
			{VoterID: "V1", CandidateID: "C1"},
			{VoterID: "V1", CandidateID: "C2"},
		},
		Regions: &region.Region{
			Name:  "R",
			Votes: 5,
			SubRegions: []*region.Region{
				{Name: "r1", Votes: 3},
				{Name: "r2", Votes: 2},
			},
		},
	}
}

// SeedScenario writes s into a database created by SetupTestDB
func SeedScenario(t *testing.T, conn *sql.DB, s models.Scenario) {
	t.Helper()

	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := conn.Exec(query, args...); err != nil {
			t.Fatalf("Failed to seed scenario: %v", err)
		}
	}

	if s.Name != "" {
		exec(`INSERT INTO scenario (name) VALUES (?)`, s.Name)
	}

	for i, c := range s.Candidates {
		exec(`INSERT INTO candidate (id, name, party, position) VALUES (?, ?, ?, ?)`,
			c.ID, c.Name, c.Party, i)
	}

	for i, rec := range s.Voters {
		var id, name any
		var age any
		if v, ok := rec["id"]; ok && v != nil {
			id = models.RecordID(rec)
		}
		if v, ok := rec["name"].(string); ok {
			name = v
		}
		if v, ok := validate.Number(rec["age"]); ok {
			age = v
		}
		exec(`INSERT INTO voter (seq, id, name, age) VALUES (?, ?, ?, ?)`, i+1, id, name, age)
	}

	for i, b := range s.Ballots {
		exec(`INSERT INTO ballot (seq, voter_id, candidate_id) VALUES (?, ?, ?)`,
			i+1, b.VoterID, b.CandidateID)
	}

	if s.Rules != nil {
		exec(`INSERT INTO validation_rule (min_age, required_fields) VALUES (?, ?)`,
			s.Rules.MinAge, strings.Join(s.Rules.RequiredFields, ","))
	}

	nextID := 0
	var seedRegion func(r *region.Region, parent any, position int)
	seedRegion = func(r *region.Region, parent any, position int) {
		if r == nil {
			return
		}
		nextID++
		id := nextID
		exec(`INSERT INTO region (id, parent_id, name, votes, position) VALUES (?, ?, ?, ?, ?)`,
			id, parent, r.Name, r.Votes, position)
		for i, sub := range r.SubRegions {
			seedRegion(sub, id, i)
		}
	}
	seedRegion(s.Regions, nil, 0)
}
