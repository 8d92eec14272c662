// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the input and output types shared by the loaders,
the runner and the report writers.

# Input Types

A Scenario describes one election to run:

  - Name: label printed in reports
  - Rules: optional validate.Rules applied before registration
  - Candidates: fixed candidate list (id, name, party)
  - Voters: loosely shaped voter records (id, name, age)
  - Ballots: votes to cast, in order (voter_id, candidate_id)
  - Regions: optional region tree for vote aggregation

Voter records stay as validate.Record so that missing fields survive
decoding. VoterFromRecord turns one into an election.Voter.

# Output Types

A Report is produced by the runner:

  - Registrations: accepted flag and reason per voter record
  - Ballots: accepted or rejected, with the rejection reason
  - Results: candidates with votes and 1-indexed rank
  - Winner: nil when no votes were cast
  - RegionTotal and Regions: region tree aggregates
  - InputsHash: SHA-256 of the accepted ballots

# Constants

Ballot outcomes:

	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
*/
package models
