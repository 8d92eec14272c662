// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultEnvFile = ".env"

type Config struct {
	ScenarioPath string
	DatabaseURL  string
	DatabaseType string
	Format       string
	MinAge       float64
	Metrics      bool
	LogLevel     string
	EnvFile      string
}

// BindFlags registers every config flag on fs, writing into cfg
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Scenario source (file or database)
	fs.StringVarP(&cfg.ScenarioPath, "file", "f", "", "Scenario file (.json, .yaml)")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Scenario database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")

	// Output
	fs.StringVarP(&cfg.Format, "output", "o", "", "Output format (text or json)")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Dump Prometheus metrics to stderr after the run")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Election tuning
	fs.Float64Var(&cfg.MinAge, "min-age", 0, "Override the validator's minimum age (registration still requires 18)")

	fs.StringVar(&cfg.EnvFile, "env-file", defaultEnvFile, "Environment file to load")
}

// ParseFlags parses args and resolves the result against the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("panchayat", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := Resolve(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve fills unset fields from the environment and defaults.
// Flags win over the environment, the environment wins over the env file.
func Resolve(cfg *Config) error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			// A missing default env file is fine, an explicit one is not
			if !errors.Is(err, fs.ErrNotExist) || cfg.EnvFile != defaultEnvFile {
				return fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
			}
		}
	}

	if cfg.ScenarioPath == "" {
		cfg.ScenarioPath = os.Getenv("PANCHAYAT_SCENARIO")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return errors.New("database type must be sqlite or postgres")
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv("PANCHAYAT_FORMAT")
		if cfg.Format == "" {
			cfg.Format = FormatText
		}
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return errors.New("output format must be text or json")
	}

	if cfg.MinAge == 0 {
		if ageStr := os.Getenv("PANCHAYAT_MIN_AGE"); ageStr != "" {
			age, err := strconv.ParseFloat(ageStr, 64)
			if err != nil {
				return errors.New("invalid PANCHAYAT_MIN_AGE env variable")
			}
			cfg.MinAge = age
		}
	}
	if cfg.MinAge < 0 {
		return errors.New("minimum age cannot be negative")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("PANCHAYAT_LOG_LEVEL")))
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return nil
}

// RequireSource checks that exactly one scenario source is configured
func (c Config) RequireSource() error {
	switch {
	case c.ScenarioPath == "" && c.DatabaseURL == "":
		return errors.New("scenario required (use -f, -d, PANCHAYAT_SCENARIO or DATABASE_URL)")
	case c.ScenarioPath != "" && c.DatabaseURL != "":
		return errors.New("use either a scenario file or a database, not both")
	}
	return nil
}
