// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/danielhkuo/panchayat/election"
)

const namespace = "panchayat"

// Outcome label values
const (
	OutcomeAccepted         = "accepted"
	OutcomeRefused          = "refused"
	OutcomeNotRegistered    = "not_registered"
	OutcomeAlreadyVoted     = "already_voted"
	OutcomeInvalidCandidate = "invalid_candidate"
	OutcomeOther            = "other"
)

type Collector struct {
	registrations *prometheus.CounterVec
	votes         *prometheus.CounterVec
}

var _ election.Observer = (*Collector)(nil)

// New creates the counters and registers them with reg
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Voter registration attempts by outcome.",
		}, []string{"outcome"}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Vote casting attempts by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.registrations, c.votes)
	return c
}

func (c *Collector) VoterRegistered(_ string, accepted bool) {
	outcome := OutcomeRefused
	if accepted {
		outcome = OutcomeAccepted
	}
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) VoteRecorded(_, _ string, err error) {
	c.votes.WithLabelValues(voteOutcome(err)).Inc()
}

func voteOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, election.ErrNotRegistered):
		return OutcomeNotRegistered
	case errors.Is(err, election.ErrAlreadyVoted):
		return OutcomeAlreadyVoted
	case errors.Is(err, election.ErrInvalidCandidate):
		return OutcomeInvalidCandidate
	default:
		return OutcomeOther
	}
}

// WriteText writes every metric family gathered from g in text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
