// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PANCHAYAT_SCENARIO", "DATABASE_URL", "DATABASE_TYPE",
		"PANCHAYAT_FORMAT", "PANCHAYAT_MIN_AGE", "PANCHAYAT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := ParseFlags([]string{"-f", "scenario.yaml"})
	require.NoError(t, err)

	assert.Equal(t, Config{
		ScenarioPath: "scenario.yaml",
		DatabaseType: "sqlite",
		Format:       FormatText,
		LogLevel:     "info",
		EnvFile:      ".env",
	}, cfg)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("PANCHAYAT_FORMAT", "json")
	t.Setenv("PANCHAYAT_MIN_AGE", "21")
	t.Setenv("PANCHAYAT_LOG_LEVEL", "DEBUG")

	cfg, err := ParseFlags([]string{"--env-file", ""})
	require.NoError(t, err)

	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 21.0, cfg.MinAge)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PANCHAYAT_FORMAT", "json")
	t.Setenv("PANCHAYAT_MIN_AGE", "21")

	cfg, err := ParseFlags([]string{"-o", "text", "--min-age", "25", "--env-file", ""})
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 25.0, cfg.MinAge)
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PANCHAYAT_SCENARIO")
	t.Cleanup(func() { os.Unsetenv("PANCHAYAT_SCENARIO") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PANCHAYAT_SCENARIO=from-file.yaml\n"), 0o600))

	cfg, err := ParseFlags([]string{"--env-file", path})
	require.NoError(t, err)
	assert.Equal(t, "from-file.yaml", cfg.ScenarioPath)
}

func TestParseFlags_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "bad format", args: []string{"-o", "xml", "--env-file", ""}},
		{name: "bad database type", args: []string{"-t", "mysql", "--env-file", ""}},
		{name: "negative age", args: []string{"--min-age", "-1", "--env-file", ""}},
		{name: "missing explicit env file", args: []string{"--env-file", "does-not-exist.env"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFlags(tc.args)
			assert.Error(t, err)
		})
	}

	t.Setenv("PANCHAYAT_MIN_AGE", "old")
	_, err := ParseFlags([]string{"--env-file", ""})
	assert.Error(t, err)
}

func TestMissingEnvFileKeepsCause(t *testing.T) {
	_, err := ParseFlags([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to load env file")
}

func TestRequireSource(t *testing.T) {
	assert.Error(t, Config{}.RequireSource())
	assert.Error(t, Config{ScenarioPath: "a.yaml", DatabaseURL: "file:a.db"}.RequireSource())
	assert.NoError(t, Config{ScenarioPath: "a.yaml"}.RequireSource())
	assert.NoError(t, Config{DatabaseURL: "file:a.db"}.RequireSource())
}
