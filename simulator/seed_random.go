package simulator

import (
	"math/rand"

	"github.com/katalvlaran/ergm/graph"
)

// randomSparse samples a starting graph by an independent Bernoulli(p)
// trial over every admissible dyad, in the same stable i-ascending,
// j-ascending trial order regardless of mode: directed considers every
// ordered pair (loops only when opts permit them), undirected considers
// unordered pairs i<j, bipartite considers only cross-side pairs. This is
// an alternative to erdosRenyi's fixed-arc-count draw for callers who want
// to target an edge *density* rather than an exact tie count.
func randomSparse(n, nA int, mode graph.Mode, opts []graph.Option, p float64, rng *rand.Rand) *graph.Graph {
	g := newEmpty(n, nA, mode, opts)

	switch mode {
	case graph.Directed:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !g.AllowLoops() {
					continue
				}
				if rng.Float64() <= p {
					_ = g.InsertArc(i, j)
				}
			}
		}
	case graph.Bipartite:
		for i := 0; i < nA; i++ {
			for j := nA; j < n; j++ {
				if rng.Float64() <= p {
					_ = g.InsertEdge(i, j)
				}
			}
		}
	default:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() <= p {
					_ = g.InsertEdge(i, j)
				}
			}
		}
	}
	return g
}
