// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally holds vote-count mappings keyed by candidate ID.

# Pure Updates

Increment never touches its input. It returns a fresh map with one
candidate's count bumped:

	before := tally.Tally{"C1": 1, "C2": 2}
	after := tally.Increment(before, "C1")
	// before: C1=1 C2=2
	// after:  C1=2 C2=2

Unknown candidate IDs are added with a count of 1, so a tally built up
only through Increment may contain any key. An Election keeps its own
tally limited to the candidates it was created with.
*/
package tally
