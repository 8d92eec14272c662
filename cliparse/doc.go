// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands built with cobra bind the same flags on their own flag set and
resolve afterwards:

	cliparse.BindFlags(cmd.Flags(), &cfg)
	// ... after parsing
	err := cliparse.Resolve(&cfg)

# Config Fields

  - ScenarioPath: scenario file, .json or .yaml
  - DatabaseURL: scenario database connection string
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Format: text or json (default: text)
  - MinAge: validator minimum age override (0 keeps the scenario rules).
    It only tightens or loosens screening; the election itself never
    registers anyone under 18, so a lower value turns "Underage" into
    "Registration refused" rather than admitting the voter.
  - Metrics: dump Prometheus metrics to stderr after a run
  - LogLevel: debug, info, warn or error (default: info)
  - EnvFile: environment file to load (default: .env)

# CLI Flags

	-f, --file           Scenario file
	-d, --database-url   Scenario database URL
	-t, --database-type  Database type
	-o, --output         Output format
	--min-age            Minimum voter age
	--metrics            Dump metrics
	--log-level          Log level
	--env-file           Environment file

# Environment Variables

Flags fall back to environment variables:

	PANCHAYAT_SCENARIO  → -f
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	PANCHAYAT_FORMAT    → -o
	PANCHAYAT_MIN_AGE   → --min-age
	PANCHAYAT_LOG_LEVEL → --log-level

Variables in the env file never override the real environment. CLI flags
take precedence over both.

# Validation

Resolve returns an error for an unknown database type or output format, a
negative or unparsable minimum age, or an explicit env file that cannot be
read. RequireSource checks that exactly one of ScenarioPath and DatabaseURL
is set.
*/
package cliparse
