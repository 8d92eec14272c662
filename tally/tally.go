// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "maps"

// Tally maps a candidate ID to its vote count
type Tally map[string]int

// New returns a tally with every given candidate at zero
func New(candidateIDs ...string) Tally {
	t := make(Tally, len(candidateIDs))
	for _, id := range candidateIDs {
		t[id] = 0
	}
	return t
}

// Increment returns a copy of current with candidateID's count raised by one.
// current is never modified; a nil tally is treated as empty.
func Increment(current Tally, candidateID string) Tally {
	next := make(Tally, len(current)+1)
	maps.Copy(next, current)
	next[candidateID]++
	return next
}

// Total sums every count in the tally
func Total(t Tally) int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}
