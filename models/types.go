// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"math"
	"time"

	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/validate"
)

// Ballot outcome constants
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Input types

// Scenario is everything needed to hold one election
type Scenario struct {
	Name       string               `json:"name" yaml:"name"`
	Rules      *validate.Rules      `json:"rules,omitempty" yaml:"rules,omitempty"`
	Candidates []election.Candidate `json:"candidates" yaml:"candidates"`
	Voters     []validate.Record    `json:"voters" yaml:"voters"`
	Ballots    []Ballot             `json:"ballots" yaml:"ballots"`
	Regions    *region.Region       `json:"regions,omitempty" yaml:"regions,omitempty"`
}

type Ballot struct {
	VoterID     string `json:"voter_id" yaml:"voter_id"`
	CandidateID string `json:"candidate_id" yaml:"candidate_id"`
}

// Output types

// Registration records what happened to one voter record
type Registration struct {
	VoterID  string `json:"voter_id"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// BallotOutcome records what happened to one ballot
type BallotOutcome struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason,omitempty"`
}

type RankedResult struct {
	election.Result
	Rank int `json:"rank"` // 1-indexed ranking
}

// Report is the full record of a scenario run
type Report struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ComputedAt    time.Time        `json:"computed_at"`
	Registrations []Registration   `json:"registrations"`
	Ballots       []BallotOutcome  `json:"ballots"`
	Results       []RankedResult   `json:"results"`
	Winner        *election.Result `json:"winner"`
	TotalVotes    int              `json:"total_votes"`
	RegionTotal   int              `json:"region_total"`
	Regions       []region.Total   `json:"regions,omitempty"`
	InputsHash    string           `json:"inputs_hash"` // Hash of accepted ballots for verification
}

// Registered counts accepted registrations
func (r Report) Registered() int {
	n := 0
	for _, reg := range r.Registrations {
		if reg.Accepted {
			n++
		}
	}
	return n
}

// Accepted counts accepted ballots
func (r Report) Accepted() int {
	n := 0
	for _, b := range r.Ballots {
		if b.Outcome == OutcomeAccepted {
			n++
		}
	}
	return n
}

// VoterFromRecord converts a decoded voter record into a registration request.
// A nil record yields nil. An absent or non-numeric age becomes NaN.
func VoterFromRecord(rec validate.Record) *election.Voter {
	if rec == nil {
		return nil
	}

	voter := &election.Voter{
		ID:   recordString(rec["id"]),
		Name: recordString(rec["name"]),
		Age:  math.NaN(),
	}
	if age, ok := rec["age"]; ok {
		// Strings are not ages at registration, only numbers
		if _, isString := age.(string); !isString {
			if n, ok := validate.Number(age); ok {
				voter.Age = n
			}
		}
	}
	return voter
}

// RecordID returns the voter ID of a record for reporting
func RecordID(rec validate.Record) string {
	if rec == nil {
		return ""
	}
	return recordString(rec["id"])
}

func recordString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
