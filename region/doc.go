// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package region aggregates vote counts over a tree of named regions.

A region tree is plain input data (district → block → village and so on)
and is never modified here:

	tree := &region.Region{
		Name:  "District",
		Votes: 5,
		SubRegions: []*region.Region{
			{Name: "Block A", Votes: 3},
			{Name: "Block B", Votes: 2},
		},
	}
	region.CountVotes(tree) // 10

The tree must be acyclic. A cycle recurses without bound.
*/
package region
