package statistic

import "github.com/katalvlaran/ergm/graph"

// BipartiteIsolatesA counts isolated nodes on side A only.
func BipartiteIsolatesA(g *graph.Graph, i, j int, isDelete bool) float64 {
	a, _ := bipartiteEndpoints(g, i, j)
	if g.Degree(a) == 0 {
		return -1
	}
	return 0
}

// BipartiteIsolatesB is BipartiteIsolatesA's side-B mirror.
func BipartiteIsolatesB(g *graph.Graph, i, j int, isDelete bool) float64 {
	_, b := bipartiteEndpoints(g, i, j)
	if g.Degree(b) == 0 {
		return -1
	}
	return 0
}

// BipartiteStarsA counts 2-stars centered on side-A nodes: sum over A nodes
// of C(degree,2). Adding edge i-j contributes the A-endpoint's
// pre-insertion degree.
func BipartiteStarsA(g *graph.Graph, i, j int, isDelete bool) float64 {
	a := i
	if g.ModeOf(a) != graph.SideA {
		a = j
	}
	return float64(g.Degree(a))
}

// BipartiteStarsB is BipartiteStarsA's side-B mirror.
func BipartiteStarsB(g *graph.Graph, i, j int, isDelete bool) float64 {
	b := i
	if g.ModeOf(b) != graph.SideB {
		b = j
	}
	return float64(g.Degree(b))
}

// NewBipartiteAltStarsA binds the alternating k-stars decay for side-A
// centers.
func NewBipartiteAltStarsA(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a := i
		if g.ModeOf(a) != graph.SideA {
			a = j
		}
		return altTerm(lambda, g.Degree(a))
	}
}

// NewBipartiteAltStarsB is NewBipartiteAltStarsA's side-B mirror.
func NewBipartiteAltStarsB(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		b := i
		if g.ModeOf(b) != graph.SideB {
			b = j
		}
		return altTerm(lambda, g.Degree(b))
	}
}

// bipartiteEndpoints orders (i,j) into (a,b) with a on side A, b on side B.
func bipartiteEndpoints(g *graph.Graph, i, j int) (a, b int) {
	if g.ModeOf(i) == graph.SideA {
		return i, j
	}
	return j, i
}

// NewBipartiteAltKCycles is the bipartite alternating 4-cycles statistic
// closing through side-A shared neighbours: for every other A-node a2
// already linked to b, both the closing term and the per-partner
// alternating decay term for the shared B-neighbour count ATwoPath(a,a2)
// contribute — spec.md §4.2 defines the family as the sum of (1-1/λ)^k
// decay terms plus the closing term, not the closing term alone.
func NewBipartiteAltKCycles(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := bipartiteEndpoints(g, i, j)
		var total float64
		for _, a2 := range g.Neighbors(b) {
			if a2 == a {
				continue
			}
			m := g.ATwoPath(a, a2)
			total += altKTriangleDelta(lambda, m, altTerm(lambda, m))
		}
		return total
	}
}

// NewBipartiteAltK4Cycles is NewBipartiteAltKCycles' side-B mirror: closing
// through shared A-neighbours of side-B nodes already linked to a, plus the
// same per-partner alternating decay term.
func NewBipartiteAltK4Cycles(lambda float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := bipartiteEndpoints(g, i, j)
		var total float64
		for _, b2 := range g.Neighbors(a) {
			if b2 == b {
				continue
			}
			m := g.BTwoPath(b, b2)
			total += altKTriangleDelta(lambda, m, altTerm(lambda, m))
		}
		return total
	}
}
