// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/validate"
)

// ReasonRefused is recorded when the election itself turns a voter away
const ReasonRefused = "Registration refused"

// DefaultRules screen voters when a scenario brings no rules of its own
var DefaultRules = validate.Rules{
	MinAge:         election.MinVotingAge,
	RequiredFields: []string{"id", "age"},
}

type Runner struct {
	log      *slog.Logger
	observer election.Observer
	minAge   float64
	now      func() time.Time
}

type Option func(*Runner)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithObserver forwards election events, e.g. to a metrics.Collector
func WithObserver(o election.Observer) Option {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithMinAge overrides the scenario's minimum age when age is positive.
// It applies to screening only; the election still refuses voters under
// election.MinVotingAge.
func WithMinAge(age float64) Option {
	return func(r *Runner) {
		r.minAge = age
	}
}

func New(opts ...Option) *Runner {
	r := &Runner{
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run holds the election described by s and reports on it
func (r *Runner) Run(s models.Scenario) models.Report {
	electionOpts := []election.Option{election.WithLogger(r.log)}
	if r.observer != nil {
		electionOpts = append(electionOpts, election.WithObserver(r.observer))
	}
	e := election.New(s.Candidates, electionOpts...)

	report := models.Report{
		ID:         uuid.NewString(),
		Name:       s.Name,
		ComputedAt: r.now().UTC(),
	}

	// Screen and register voters
	check := r.validator(s.Rules, false)
	for _, rec := range s.Voters {
		reg := models.Registration{VoterID: models.RecordID(rec)}
		if check != nil {
			if verdict := check(rec); !verdict.Valid {
				reg.Reason = verdict.Reason
				r.log.Info("voter failed validation", "voter_id", reg.VoterID, "reason", verdict.Reason)
				report.Registrations = append(report.Registrations, reg)
				continue
			}
		}

		reg.Accepted = e.RegisterVoter(models.VoterFromRecord(rec))
		if !reg.Accepted {
			reg.Reason = ReasonRefused
		}
		report.Registrations = append(report.Registrations, reg)
	}

	// Cast ballots
	for _, b := range s.Ballots {
		outcome := election.CastVote(e, b.VoterID, b.CandidateID,
			func(receipt election.Receipt) models.BallotOutcome {
				return models.BallotOutcome{
					VoterID:     receipt.VoterID,
					CandidateID: receipt.CandidateID,
					Outcome:     models.OutcomeAccepted,
				}
			},
			func(reason string) models.BallotOutcome {
				return models.BallotOutcome{
					VoterID:     b.VoterID,
					CandidateID: b.CandidateID,
					Outcome:     models.OutcomeRejected,
					Reason:      reason,
				}
			},
		)
		report.Ballots = append(report.Ballots, outcome)
	}

	// Collect results
	results := e.Results(nil)
	report.Results = make([]models.RankedResult, len(results))
	for i, res := range results {
		report.Results[i] = models.RankedResult{Result: res, Rank: i + 1}
		report.TotalVotes += res.Votes
	}
	report.Winner = e.Winner()
	report.RegionTotal = region.CountVotes(s.Regions)
	report.Regions = region.Breakdown(s.Regions)
	report.InputsHash = inputsHash(report.Ballots)

	attrs := []any{"report_id", report.ID, "registered", report.Registered(), "votes", report.TotalVotes}
	if report.Winner != nil {
		attrs = append(attrs, "winner", report.Winner.ID)
	}
	r.log.Info("election complete", attrs...)

	return report
}

// Check screens every voter record without holding an election
func (r *Runner) Check(s models.Scenario) []models.Registration {
	check := r.validator(s.Rules, true)

	out := make([]models.Registration, len(s.Voters))
	for i, rec := range s.Voters {
		verdict := check(rec)
		out[i] = models.Registration{
			VoterID:  models.RecordID(rec),
			Accepted: verdict.Valid,
			Reason:   verdict.Reason,
		}
	}
	return out
}

// validator builds the screening function for a scenario.
// Without rules it returns nil unless useDefault is set.
func (r *Runner) validator(rules *validate.Rules, useDefault bool) validate.Func {
	var effective validate.Rules
	switch {
	case rules != nil:
		effective = *rules
	case useDefault:
		effective = DefaultRules
	case r.minAge > 0:
		// the age override alone is still a rule
	default:
		return nil
	}

	if r.minAge > 0 {
		effective.MinAge = r.minAge
	}
	return validate.NewVoterValidator(effective)
}

// inputsHash fingerprints the accepted ballots independent of their order
func inputsHash(ballots []models.BallotOutcome) string {
	var lines []string
	for _, b := range ballots {
		if b.Outcome == models.OutcomeAccepted {
			lines = append(lines, b.VoterID+"\x00"+b.CandidateID)
		}
	}
	if len(lines) == 0 {
		return "no-ballots"
	}
	slices.Sort(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
