// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/testutil"
	"github.com/danielhkuo/panchayat/validate"
)

func TestLoadScenario(t *testing.T) {
	assert := assert.New(t)
	conn := testutil.SetupTestDB(t)

	want := testutil.SampleScenario()
	want.Rules = &validate.Rules{MinAge: 18, RequiredFields: []string{"id", "age"}}
	testutil.SeedScenario(t, conn, want)

	got, err := db.LoadScenario(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal(want.Name, got.Name)
	assert.Equal(want.Candidates, got.Candidates)
	assert.Equal(want.Ballots, got.Ballots)
	assert.Equal(want.Rules, got.Rules)
	assert.Equal([]validate.Record{
		{"id": "V1", "name": "Mohan", "age": float64(25)},
		{"id": "V2", "name": "Geeta", "age": float64(17)},
	}, got.Voters)
	assert.Equal(want.Regions, got.Regions)
	assert.Equal(10, region.CountVotes(got.Regions))
}

func TestLoadScenarioMissingColumns(t *testing.T) {
	assert := assert.New(t)
	conn := testutil.SetupTestDB(t)

	testutil.SeedScenario(t, conn, models.Scenario{
		Voters: []validate.Record{
			{"id": "V1"},
			{"name": "anonymous", "age": 40},
		},
	})

	got, err := db.LoadScenario(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal("", got.Name)
	assert.Nil(got.Rules)
	assert.Nil(got.Regions)
	assert.Empty(got.Candidates)
	assert.Equal([]validate.Record{
		{"id": "V1"},
		{"name": "anonymous", "age": float64(40)},
	}, got.Voters)

	check := validate.NewVoterValidator(validate.Rules{MinAge: 18, RequiredFields: []string{"id", "age"}})
	assert.Equal(validate.Verdict{Reason: "Missing age"}, check(got.Voters[0]))
	assert.Equal(validate.Verdict{Reason: "Missing id"}, check(got.Voters[1]))
}

func TestLoadScenarioRegionOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := conn.Exec(`
		INSERT INTO region (id, parent_id, name, votes, position) VALUES
			(1, NULL, 'District', 1, 0),
			(2, 1, 'Block B', 2, 1),
			(3, 1, 'Block A', 3, 0),
			(4, 3, 'Village', 4, 0),
			(5, 99, 'Orphan', 100, 0)
	`)
	require.NoError(t, err)

	got, err := db.LoadScenario(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal(t, &region.Region{
		Name:  "District",
		Votes: 1,
		SubRegions: []*region.Region{
			{Name: "Block A", Votes: 3, SubRegions: []*region.Region{{Name: "Village", Votes: 4}}},
			{Name: "Block B", Votes: 2},
		},
	}, got.Regions)
	assert.Equal(t, 10, region.CountVotes(got.Regions))
}

func TestLoadScenarioMultipleRoots(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := conn.Exec(`
		INSERT INTO region (id, parent_id, name, votes) VALUES
			(1, NULL, 'North', 1),
			(2, NULL, 'South', 2)
	`)
	require.NoError(t, err)

	_, err = db.LoadScenario(context.Background(), conn)
	assert.ErrorIs(t, err, db.ErrMultipleRootRegions)
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	assert.NoError(t, db.CreateSchema(context.Background(), conn))
}

func TestOpenRejectsUnknownType(t *testing.T) {
	_, err := db.Open(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
}
