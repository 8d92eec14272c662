// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election models a single village election held in memory.

# Lifecycle

An Election is created with a fixed list of candidates. Voters register,
each registered voter may cast exactly one vote, and results can be read
at any time:

	e := election.New([]election.Candidate{
		{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
		{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
	})
	e.RegisterVoter(&election.Voter{ID: "V1", Name: "Mohan", Age: 25})

# Casting Votes

Votes can be cast with two callbacks, exactly one of which runs. CastVote
returns whatever that callback returns:

	msg := election.CastVote(e, "V1", "C1",
		func(r election.Receipt) string { return "voted!" },
		func(reason string) string { return "error: " + reason },
	)

Cast is the same operation returning (Receipt, error). Failures are checked
in order and the first one wins:

	ErrNotRegistered    → "Not registered"
	ErrAlreadyVoted     → "Already voted"
	ErrInvalidCandidate → "Invalid candidate"

# Voter States

Each voter moves forward only: unregistered → registered → voted. There is
no way to unregister or retract a vote.

# Results

Results orders candidates by votes descending, keeping the original
candidate order on ties, unless a comparator is given. Winner returns the
first of those results, or nil while no votes have been cast.

# Concurrency

All state is guarded by a mutex so one Election can be shared between
goroutines. Callbacks run after the lock is released and may call back into
the Election.
*/
package election
