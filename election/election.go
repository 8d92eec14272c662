// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"cmp"
	"errors"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/danielhkuo/panchayat/tally"
)

// MinVotingAge is the youngest age accepted at registration
const MinVotingAge = 18

// Reasons handed to the error callback of CastVote
const (
	ReasonNotRegistered    = "Not registered"
	ReasonAlreadyVoted     = "Already voted"
	ReasonInvalidCandidate = "Invalid candidate"
)

var (
	ErrNotRegistered    = errors.New("voter is not registered")
	ErrAlreadyVoted     = errors.New("voter has already voted")
	ErrInvalidCandidate = errors.New("invalid candidate")
)

type Candidate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Party string `json:"party" yaml:"party"`
}

// Voter is a registration request. A NaN Age means the age is unknown.
type Voter struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Age  float64 `json:"age"`
}

// Receipt is handed to the success callback once a vote is recorded
type Receipt struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

// Result is a candidate together with its current vote count
type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// Observer is notified after every registration and vote attempt
type Observer interface {
	VoterRegistered(voterID string, accepted bool)
	VoteRecorded(voterID, candidateID string, err error)
}

type Option func(*Election)

// WithLogger sets the logger used for registration and voting events
func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		if logger != nil {
			e.log = logger
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Election) {
		e.observer = o
	}
}

type Election struct {
	mu sync.Mutex

	candidates []Candidate
	registered map[string]struct{}
	voted      map[string]struct{}
	votes      tally.Tally

	log      *slog.Logger
	observer Observer
}

// New creates an election for a fixed list of candidates.
// The slice is copied; later changes by the caller have no effect.
func New(candidates []Candidate, opts ...Option) *Election {
	e := &Election{
		candidates: slices.Clone(candidates),
		registered: make(map[string]struct{}),
		voted:      make(map[string]struct{}),
		votes:      tally.New(),
		log:        slog.Default(),
	}
	for _, c := range e.candidates {
		e.votes[c.ID] = 0
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterVoter adds v to the voter roll.
// It returns false for a nil or malformed voter, an age under MinVotingAge,
// or an ID that is already registered.
func (e *Election) RegisterVoter(v *Voter) bool {
	var voterID string
	if v != nil {
		voterID = v.ID
	}

	reason := e.register(v)
	accepted := reason == ""
	if accepted {
		e.log.Debug("voter registered", "voter_id", voterID)
	} else {
		e.log.Info("voter registration refused", "voter_id", voterID, "reason", reason)
	}

	if e.observer != nil {
		e.observer.VoterRegistered(voterID, accepted)
	}
	return accepted
}

// register returns an empty string on success, otherwise why it refused
func (e *Election) register(v *Voter) string {
	if v == nil || v.ID == "" || math.IsNaN(v.Age) || math.IsInf(v.Age, 0) {
		return "malformed voter"
	}
	if v.Age < MinVotingAge {
		return "underage"
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registered[v.ID]; ok {
		return "already registered"
	}
	e.registered[v.ID] = struct{}{}
	return ""
}

// Cast records a vote and returns its receipt.
// The error is one of ErrNotRegistered, ErrAlreadyVoted or ErrInvalidCandidate.
func (e *Election) Cast(voterID, candidateID string) (Receipt, error) {
	err := e.record(voterID, candidateID)
	if err != nil {
		e.log.Info("vote rejected", "voter_id", voterID, "candidate_id", candidateID, "reason", Reason(err))
	} else {
		e.log.Debug("vote recorded", "voter_id", voterID, "candidate_id", candidateID)
	}

	if e.observer != nil {
		e.observer.VoteRecorded(voterID, candidateID, err)
	}
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{VoterID: voterID, CandidateID: candidateID}, nil
}

func (e *Election) record(voterID, candidateID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registered[voterID]; !ok {
		return ErrNotRegistered
	}
	if _, ok := e.voted[voterID]; ok {
		return ErrAlreadyVoted
	}
	// votes holds exactly the construction-time candidate IDs
	if _, ok := e.votes[candidateID]; !ok {
		return ErrInvalidCandidate
	}

	e.votes[candidateID]++
	e.voted[voterID] = struct{}{}
	return nil
}

// CastVote casts a vote and invokes exactly one of the callbacks:
// onSuccess with the receipt, or onError with the rejection reason.
// It returns the invoked callback's result.
func CastVote[T any](e *Election, voterID, candidateID string, onSuccess func(Receipt) T, onError func(reason string) T) T {
	receipt, err := e.Cast(voterID, candidateID)
	if err != nil {
		return onError(Reason(err))
	}
	return onSuccess(receipt)
}

// Reason maps a Cast error to its human readable reason
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotRegistered):
		return ReasonNotRegistered
	case errors.Is(err, ErrAlreadyVoted):
		return ReasonAlreadyVoted
	case errors.Is(err, ErrInvalidCandidate):
		return ReasonInvalidCandidate
	default:
		return err.Error()
	}
}

// ByVotes orders results by vote count, highest first
func ByVotes(a, b Result) int {
	return cmp.Compare(b.Votes, a.Votes)
}

// Results returns one entry per candidate.
// A nil compare sorts with ByVotes; ties keep the original candidate order.
// A non-nil compare is used as given.
func (e *Election) Results(compare func(a, b Result) int) []Result {
	results, _ := e.snapshot()
	if compare == nil {
		compare = ByVotes
	}
	slices.SortStableFunc(results, compare)
	return results
}

// Winner returns the candidate with the most votes, the earliest candidate
// on a tie, or nil if no votes have been cast
func (e *Election) Winner() *Result {
	results, total := e.snapshot()
	if total == 0 {
		return nil
	}
	slices.SortStableFunc(results, ByVotes)
	return &results[0]
}

// snapshot copies the results in candidate order along with the total votes
func (e *Election) snapshot() ([]Result, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]Result, len(e.candidates))
	for i, c := range e.candidates {
		results[i] = Result{
			ID:    c.ID,
			Name:  c.Name,
			Party: c.Party,
			Votes: e.votes[c.ID],
		}
	}
	return results, tally.Total(e.votes)
}
