// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package runner holds a scenario's election from start to finish.

# Flow

Run creates an Election for the scenario's candidates, then:

 1. screens every voter record with the scenario's validation rules
 2. registers the records that pass
 3. casts every ballot in order through election.CastVote
 4. collects ranked results, the winner and region totals

	r := runner.New(runner.WithLogger(logger), runner.WithObserver(m))
	report := r.Run(s)

Nothing in a scenario makes Run fail. Refused registrations and rejected
ballots are recorded in the report with their reasons.

# Screening Only

Check applies the validation rules without running an election. A
scenario without rules is screened with DefaultRules.
*/
package runner
