package statistic

import (
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/graph"
)

// NewJaccardSimilarity binds a set-of-category nodal attribute to the
// Jaccard-similarity statistic: an arc contributes |A∩B|/|A∪B| over the
// endpoints' category membership sets, ignoring categories either endpoint
// marks as attrs.SetNA. A pair with an empty union contributes 1 (both
// endpoints agree on having nothing).
func NewJaccardSimilarity(sets func(v int) []attrs.SetState) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := sets(i), sets(j)
		var inter, union int
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		for k := 0; k < n; k++ {
			if a[k] == attrs.SetNA || b[k] == attrs.SetNA {
				continue
			}
			ai := a[k] == attrs.Present
			bi := b[k] == attrs.Present
			if ai || bi {
				union++
			}
			if ai && bi {
				inter++
			}
		}
		if union == 0 {
			return 1
		}
		return float64(inter) / float64(union)
	}
}

// NewMatchingInteraction binds a set-of-category attribute together with a
// binary attribute: an arc contributes the endpoints' Jaccard similarity
// only when both endpoints also carry the binary attribute (spec.md §4.2's
// set/binary interaction statistic).
func NewMatchingInteraction(sets func(v int) []attrs.SetState, binary func(v int) int8) Func {
	jaccard := NewJaccardSimilarity(sets)
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if binary(i) != 1 || binary(j) != 1 {
			return 0
		}
		return jaccard(g, i, j, isDelete)
	}
}
