package statistic

import "github.com/katalvlaran/ergm/graph"

// NewMatching binds a categorical attribute to the Matching statistic: an
// arc contributes 1 when both endpoints share the same category.
func NewMatching(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) == value(j) {
			return 1
		}
		return 0
	}
}

// NewMismatching is Matching's complement.
func NewMismatching(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) != value(j) {
			return 1
		}
		return 0
	}
}

// NewMatchingReciprocity binds a categorical attribute to a reciprocated
// arc whose endpoints match.
func NewMatchingReciprocity(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) == value(j) && g.IsArc(j, i) {
			return 1
		}
		return 0
	}
}

// NewMismatchingReciprocity is NewMatchingReciprocity's complement.
func NewMismatchingReciprocity(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) != value(j) && g.IsArc(j, i) {
			return 1
		}
		return 0
	}
}

// NewMismatchingTransitiveTriad gates TransitiveTriad's closing count by
// endpoint mismatch: a new arc i->j only contributes its closed two-paths
// i->v->j when i and j carry different categories.
func NewMismatchingTransitiveTriad(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) == value(j) {
			return 0
		}
		return float64(g.Mix2P(i, j))
	}
}

// NewMismatchingTransitiveTies gates TransitiveTriad's closing count by
// per-partner mismatch: each two-path partner v contributes only if it
// mismatches whichever of i, j it is not already tied through.
func NewMismatchingTransitiveTies(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		var count int
		for _, v := range g.OutNeighbors(i) {
			if v == j {
				continue
			}
			if g.IsArc(v, j) && value(v) != value(i) {
				count++
			}
		}
		return float64(count)
	}
}

// NewBipartiteTwoPathMatching binds a categorical attribute shared across
// both bipartite sides to the two-path matching statistic: the closing
// term's partner contributes only when it matches whichever endpoint it is
// newly two-path-connected through.
func NewBipartiteTwoPathMatching(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := bipartiteEndpoints(g, i, j)
		var count int
		for _, a2 := range g.Neighbors(b) {
			if a2 == a {
				continue
			}
			if value(a2) == value(a) {
				count++
			}
		}
		return float64(count)
	}
}

// NewBipartiteTwoPathMismatching is NewBipartiteTwoPathMatching's
// complement.
func NewBipartiteTwoPathMismatching(value func(v int) int) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := bipartiteEndpoints(g, i, j)
		var count int
		for _, a2 := range g.Neighbors(b) {
			if a2 == a {
				continue
			}
			if value(a2) != value(a) {
				count++
			}
		}
		return float64(count)
	}
}

// NewNodematchAlpha binds a differential-homophily exponent alpha and a
// per-category weight (typically the category's population share): a
// matching arc contributes weight(cat)^alpha, with 0^0 defined as 0
// (util.go's pow0).
func NewNodematchAlpha(alpha float64, value func(v int) int, weight func(cat int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) != value(j) {
			return 0
		}
		return pow0(weight(value(i)), alpha)
	}
}

// NewNodematchBeta mirrors NewNodematchAlpha with its own exponent, used by
// spec.md §4.2's two-exponent differential-homophily parameterization.
func NewNodematchBeta(beta float64, value func(v int) int, weight func(cat int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) != value(j) {
			return 0
		}
		return pow0(weight(value(i)), beta)
	}
}
