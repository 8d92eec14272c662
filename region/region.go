// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package region

// Region is one node of a region tree
type Region struct {
	Name       string    `json:"name" yaml:"name"`
	Votes      int       `json:"votes" yaml:"votes"`
	SubRegions []*Region `json:"sub_regions,omitempty" yaml:"sub_regions,omitempty"`
}

// Total is the aggregate for a single node in a Breakdown
type Total struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Votes int    `json:"votes"` // the node's own votes
	Total int    `json:"total"` // own votes plus every descendant
}

// CountVotes sums the votes of r and all of its descendants, depth first.
// A nil region counts as zero.
func CountVotes(r *Region) int {
	if r == nil {
		return 0
	}

	total := r.Votes
	for _, sub := range r.SubRegions {
		total += CountVotes(sub)
	}
	return total
}

// Breakdown lists every node of the tree in pre-order with its subtree total
func Breakdown(r *Region) []Total {
	var out []Total
	breakdown(r, 0, &out)
	return out
}

func breakdown(r *Region, depth int, out *[]Total) int {
	if r == nil {
		return 0
	}

	idx := len(*out)
	*out = append(*out, Total{Name: r.Name, Depth: depth, Votes: r.Votes})

	total := r.Votes
	for _, sub := range r.SubRegions {
		total += breakdown(sub, depth+1, out)
	}
	(*out)[idx].Total = total
	return total
}
