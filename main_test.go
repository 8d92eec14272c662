// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/testutil"
)

var sampleFile = filepath.Join("scenario", "testdata", "gram-panchayat.yaml")

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--env-file", "", "--log-level", "error"))
	return cmd.ExecuteContext(context.Background())
}

func TestCommands(t *testing.T) {
	t.Setenv("PANCHAYAT_SCENARIO", "")
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "run text", args: []string{"run", "-f", sampleFile}},
		{name: "run json with metrics", args: []string{"run", "-f", sampleFile, "-o", "json", "--metrics"}},
		{name: "validate", args: []string{"validate", "-f", sampleFile}},
		{name: "regions", args: []string{"regions", "-f", sampleFile, "-o", "json"}},
		{name: "no source", args: []string{"run"}, wantErr: true},
		{name: "both sources", args: []string{"run", "-f", sampleFile, "-d", ":memory:"}, wantErr: true},
		{name: "init-db needs url", args: []string{"init-db"}, wantErr: true},
		{name: "init-db", args: []string{"init-db", "-d", ":memory:"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := execute(t, tc.args...)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadScenarioFromDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.db")
	url := "file:" + path

	conn, err := db.Open(context.Background(), db.TypeSQLite, url)
	require.NoError(t, err)
	require.NoError(t, db.CreateSchema(context.Background(), conn))
	testutil.SeedScenario(t, conn, testutil.SampleScenario())
	require.NoError(t, conn.Close())

	cfg := testutil.GetTestConfig()
	cfg.DatabaseURL = url

	s, err := loadScenario(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "Gram Panchayat 2026", s.Name)
	assert.Len(t, s.Candidates, 2)

	assert.NoError(t, execute(t, "run", "-d", url, "-o", cliparse.FormatJSON))
}
