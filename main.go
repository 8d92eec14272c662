// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/metrics"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/report"
	"github.com/danielhkuo/panchayat/runner"
	"github.com/danielhkuo/panchayat/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "panchayat",
		Short:         "Run village panchayat elections from scenario files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd(), newRegionsCmd(), newInitDBCmd())
	return root
}

// withConfig binds the config flags to cmd and resolves them before run
func withConfig(cmd *cobra.Command, run func(ctx context.Context, cfg cliparse.Config) error) *cobra.Command {
	var cfg cliparse.Config
	cliparse.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cliparse.Resolve(&cfg); err != nil {
			return err
		}
		slog.SetDefault(newLogger(cfg.LogLevel))
		return run(cmd.Context(), cfg)
	}
	return cmd
}

func newRunCmd() *cobra.Command {
	return withConfig(&cobra.Command{
		Use:   "run",
		Short: "Hold the election described by a scenario and print the report",
	}, func(ctx context.Context, cfg cliparse.Config) error {
		s, err := loadScenario(ctx, cfg)
		if err != nil {
			return err
		}

		opts := []runner.Option{runner.WithLogger(slog.Default()), runner.WithMinAge(cfg.MinAge)}
		reg := prometheus.NewRegistry()
		if cfg.Metrics {
			opts = append(opts, runner.WithObserver(metrics.New(reg)))
		}

		rep := runner.New(opts...).Run(s)
		if err := report.Write(os.Stdout, rep, cfg.Format); err != nil {
			return err
		}

		if cfg.Metrics {
			return metrics.WriteText(os.Stderr, reg)
		}
		return nil
	})
}

func newValidateCmd() *cobra.Command {
	return withConfig(&cobra.Command{
		Use:   "validate",
		Short: "Screen every voter record against the validation rules",
	}, func(ctx context.Context, cfg cliparse.Config) error {
		s, err := loadScenario(ctx, cfg)
		if err != nil {
			return err
		}

		verdicts := runner.New(runner.WithMinAge(cfg.MinAge)).Check(s)
		if cfg.Format == cliparse.FormatJSON {
			return report.WriteJSON(os.Stdout, verdicts)
		}
		return report.WriteVerdicts(os.Stdout, verdicts)
	})
}

func newRegionsCmd() *cobra.Command {
	return withConfig(&cobra.Command{
		Use:   "regions",
		Short: "Print vote totals for the scenario's region tree",
	}, func(ctx context.Context, cfg cliparse.Config) error {
		s, err := loadScenario(ctx, cfg)
		if err != nil {
			return err
		}

		totals := region.Breakdown(s.Regions)
		if cfg.Format == cliparse.FormatJSON {
			return report.WriteJSON(os.Stdout, map[string]any{
				"total":   region.CountVotes(s.Regions),
				"regions": totals,
			})
		}
		if len(totals) == 0 {
			fmt.Println("Total: 0 votes")
			return nil
		}
		return report.WriteRegions(os.Stdout, totals)
	})
}

func newInitDBCmd() *cobra.Command {
	return withConfig(&cobra.Command{
		Use:   "init-db",
		Short: "Create the scenario tables in the configured database",
	}, func(ctx context.Context, cfg cliparse.Config) error {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database URL required (use -d or DATABASE_URL env)")
		}

		conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.CreateSchema(ctx, conn); err != nil {
			return err
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return nil
	})
}

// loadScenario reads the scenario from the configured file or database
func loadScenario(ctx context.Context, cfg cliparse.Config) (models.Scenario, error) {
	if err := cfg.RequireSource(); err != nil {
		return models.Scenario{}, err
	}

	if cfg.ScenarioPath != "" {
		return scenario.Load(cfg.ScenarioPath)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return models.Scenario{}, err
	}
	defer conn.Close()

	s, err := db.LoadScenario(ctx, conn)
	if err != nil {
		return models.Scenario{}, err
	}
	if err := scenario.Validate(s); err != nil {
		return models.Scenario{}, fmt.Errorf("invalid scenario in database: %w", err)
	}
	return s, nil
}

// newLogger builds the stderr logger; PANCHAYAT_LOG_FORMAT=json switches handlers
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if os.Getenv("PANCHAYAT_LOG_FORMAT") == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
