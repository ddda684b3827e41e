package statistic

import "github.com/katalvlaran/ergm/graph"

// Arc is the arc-count statistic: adding any arc contributes exactly 1.
func Arc(g *graph.Graph, i, j int, isDelete bool) float64 {
	return 1
}

// Reciprocity reports whether adding i->j closes a mutual dyad, i.e.
// whether j->i already exists.
func Reciprocity(g *graph.Graph, i, j int, isDelete bool) float64 {
	if g.IsArc(j, i) {
		return 1
	}
	return 0
}

// Sink counts nodes with zero out-degree. Adding i->j removes i from that
// set exactly when i currently has no outgoing arcs.
func Sink(g *graph.Graph, i, j int, isDelete bool) float64 {
	if g.OutDegree(i) == 0 {
		return -1
	}
	return 0
}

// Source counts nodes with zero in-degree. Adding i->j removes j from that
// set exactly when j currently has no incoming arcs.
func Source(g *graph.Graph, i, j int, isDelete bool) float64 {
	if g.InDegree(j) == 0 {
		return -1
	}
	return 0
}

// Isolates counts nodes with total degree zero. Adding i->j can remove
// either or both endpoints from that set, depending on their degree before
// the arc is added.
func Isolates(g *graph.Graph, i, j int, isDelete bool) float64 {
	var delta float64
	if g.InDegree(i)+g.OutDegree(i) == 0 {
		delta--
	}
	if i != j && g.InDegree(j)+g.OutDegree(j) == 0 {
		delta--
	}
	return delta
}

// TwoPath is the total count of directed two-paths a->v->b in the graph.
// Adding i->j creates one new two-path for every existing arc w->i (through
// i as the final leg) and one for every existing arc j->v (through j as the
// first leg).
func TwoPath(g *graph.Graph, i, j int, isDelete bool) float64 {
	return float64(g.InDegree(i) + g.OutDegree(j))
}

// InTwoStars counts in-two-stars, sum over nodes of C(indeg,2). Adding i->j
// increases indeg(j) by one, contributing indeg(j) (before the increment)
// new in-two-stars centered on j.
func InTwoStars(g *graph.Graph, i, j int, isDelete bool) float64 {
	return float64(g.InDegree(j))
}

// OutTwoStars is InTwoStars' mirror on out-degree.
func OutTwoStars(g *graph.Graph, i, j int, isDelete bool) float64 {
	return float64(g.OutDegree(i))
}

// TransitiveTriad counts transitive triads i->j, i->v, v->j. Adding i->j
// closes one for every existing two-path i->v->j, i.e. Mix2P(i,j).
func TransitiveTriad(g *graph.Graph, i, j int, isDelete bool) float64 {
	return float64(g.Mix2P(i, j))
}

// CyclicTriad counts cyclic triads i->j->v->i. Adding i->j closes one for
// every existing v with j->v and v->i.
func CyclicTriad(g *graph.Graph, i, j int, isDelete bool) float64 {
	var count int
	for _, v := range g.OutNeighbors(j) {
		if v != i && g.IsArc(v, i) {
			count++
		}
	}
	return float64(count)
}

// Loop reports whether the dyad being toggled is a self-loop.
func Loop(g *graph.Graph, i, j int, isDelete bool) float64 {
	if i == j {
		return 1
	}
	return 0
}

// NewLoopInteraction binds Loop's indicator to a continuous nodal attribute,
// so the statistic reports the node's attribute value on the toggled loop
// rather than a bare count (spec.md §4.2, "Loop interaction" family).
func NewLoopInteraction(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if i != j {
			return 0
		}
		return value(i)
	}
}

// NewAltInStars binds the alternating in-k-stars decay parameter lambda.
// The closed-form increment when indeg(j) goes from d to d+1 is
// (1-1/lambda)^d; see util.go's altTerm derivation.
func NewAltInStars(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return altTerm(lambda, g.InDegree(j))
	}
}

// NewAltOutStars is NewAltInStars' out-degree mirror.
func NewAltOutStars(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return altTerm(lambda, g.OutDegree(i))
	}
}

// altKTriangleDelta is the shared two-term evaluation for the four
// AltKTriangles orientations: the closing term λ(1-(1-1/λ)^m) for the
// two-path being newly closed by the proposed arc, plus the per-partner
// alternating decay sum over every other two-path the new arc extends or
// shortens (the same partner contribution NewAltTwoPaths* sums for its own
// statistic) — spec.md §4.2 defines AltKTriangles as both terms together,
// not the closing term alone.
func altKTriangleDelta(lambda float64, m int, partnerSum float64) float64 {
	return altWeight(lambda, m) + partnerSum
}

// NewAltKTrianglesT is the transitive orientation (path i->v->j, closed by
// the new arc i->j): the closing term reads Mix2P(i,j), and the partner sum
// reuses NewAltTwoPathsT's Mix2P-orientation pair walk.
func NewAltKTrianglesT(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		partner := altTwoPathsDelta(lambda, g.Mix2P, g.InNeighbors(i), g.OutNeighbors(j), i, j)
		return altKTriangleDelta(lambda, g.Mix2P(i, j), partner)
	}
}

// NewAltKTrianglesC is the cyclic orientation (path j->v->i): the closing
// term reads Mix2P(j,i), and the partner sum walks the same Mix2P pairs
// with i and j swapped.
func NewAltKTrianglesC(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		partner := altTwoPathsDelta(lambda, g.Mix2P, g.InNeighbors(j), g.OutNeighbors(i), j, i)
		return altKTriangleDelta(lambda, g.Mix2P(j, i), partner)
	}
}

// NewAltKTrianglesD is the shared-in-neighbour ("divergent") orientation:
// the closing term reads Out2P(i,j), the count of common source nodes v
// with v->i and v->j, and the partner sum reuses NewAltTwoPathsD's walk.
func NewAltKTrianglesD(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		partner := altTwoPathsDelta(lambda, g.Out2P, g.OutNeighbors(i), nil, i, j)
		return altKTriangleDelta(lambda, g.Out2P(i, j), partner)
	}
}

// NewAltKTrianglesU is the shared-out-neighbour ("convergent") orientation:
// the closing term reads In2P(i,j), the count of common target nodes v with
// i->v and j->v, and the partner sum reuses NewAltTwoPathsU's walk.
func NewAltKTrianglesU(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		partner := altTwoPathsDelta(lambda, g.In2P, nil, g.InNeighbors(j), i, j)
		return altKTriangleDelta(lambda, g.In2P(i, j), partner)
	}
}

// altTwoPathsDelta sums the exact per-pair alternating decay touched by
// adding i->j along one two-path orientation, mirroring the pairs the
// graph store itself updates in its cache-maintenance scan: the Mix2P
// orientation touches (w,j) for w in InNeighbors(i) and (i,v) for v in
// OutNeighbors(j); the Out2P orientation touches (v,j) for v in
// OutNeighbors(i) (Out2P is symmetric), and the In2P orientation touches
// (i,v) for v in InNeighbors(j).
func altTwoPathsDelta(lambda float64, twoPathOf func(a, b int) int, leftPairs, rightPairs []int, i, j int) float64 {
	var total float64
	for _, w := range leftPairs {
		if w == j {
			continue
		}
		total += altTerm(lambda, twoPathOf(w, j))
	}
	for _, v := range rightPairs {
		if v == i {
			continue
		}
		total += altTerm(lambda, twoPathOf(i, v))
	}
	return total
}

// NewAltTwoPathsT weights the Mix2P-orientation two-path count by the
// alternating decay.
func NewAltTwoPathsT(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return altTwoPathsDelta(lambda, g.Mix2P, g.InNeighbors(i), g.OutNeighbors(j), i, j)
	}
}

// NewAltTwoPathsD weights the Out2P-orientation (shared in-neighbour)
// two-path count.
func NewAltTwoPathsD(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return altTwoPathsDelta(lambda, g.Out2P, g.OutNeighbors(i), nil, i, j)
	}
}

// NewAltTwoPathsU weights the In2P-orientation (shared out-neighbour)
// two-path count.
func NewAltTwoPathsU(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return altTwoPathsDelta(lambda, g.In2P, nil, g.InNeighbors(j), i, j)
	}
}

// NewAltTwoPathsTD is the T/D blend spec.md §4.2 names directly: the
// arithmetic mean of the T and D orientations.
func NewAltTwoPathsTD(lambda float64) Func {
	t := NewAltTwoPathsT(lambda)
	d := NewAltTwoPathsD(lambda)
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return 0.5 * (t(g, i, j, isDelete) + d(g, i, j, isDelete))
	}
}
