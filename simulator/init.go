package simulator

import (
	"io"
	"math/rand"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/pajek"
)

// BuildInitial constructs the starting graph for one of four strategies:
// empty (basic/TNT), Erdős-Rényi with a fixed arc count (IFD), an
// independent Bernoulli(p) start (cfg.UseRandomSparseStart), or a loaded
// Pajek graph with its maxterm-sender arcs removed (cERGM). Runs matching
// none of the other three start empty.
func BuildInitial(n, nA int, mode graph.Mode, opts []graph.Option, cfg Config, pajekFile io.Reader, rng *rand.Rand) (*graph.Graph, error) {
	switch {
	case cfg.CERGM && pajekFile != nil:
		g, err := pajek.Read(pajekFile, mode, opts...)
		if err != nil {
			return nil, err
		}
		stripMaxtermSenderArcs(g)
		return g, nil

	case cfg.UseIFDSampler && cfg.NumArcs > 0:
		return erdosRenyi(n, nA, mode, opts, cfg.NumArcs, rng), nil

	case cfg.UseRandomSparseStart:
		return randomSparse(n, nA, mode, opts, cfg.RandomSparseP, rng), nil

	default:
		return newEmpty(n, nA, mode, opts), nil
	}
}

func newEmpty(n, nA int, mode graph.Mode, opts []graph.Option) *graph.Graph {
	switch mode {
	case graph.Directed:
		return graph.NewDirected(n, opts...)
	case graph.Bipartite:
		return graph.NewBipartite(n, nA, opts...)
	default:
		return graph.NewUndirected(n, opts...)
	}
}

// erdosRenyi builds a graph with exactly numArcs ties chosen uniformly at
// random without replacement, for IFD's fixed-density starting point.
func erdosRenyi(n, nA int, mode graph.Mode, opts []graph.Option, numArcs int, rng *rand.Rand) *graph.Graph {
	g := newEmpty(n, nA, mode, opts)
	for g.ArcCount()+g.EdgeCount() < numArcs {
		var i, j int
		if mode == graph.Bipartite {
			i = rng.Intn(nA)
			j = nA + rng.Intn(n-nA)
		} else {
			i = rng.Intn(n)
			j = rng.Intn(n)
			if i == j && !g.AllowLoops() {
				continue
			}
		}
		if mode == graph.Directed {
			if g.IsArc(i, j) {
				continue
			}
			_ = g.InsertArc(i, j)
		} else {
			if g.IsEdge(i, j) {
				continue
			}
			_ = g.InsertEdge(i, j)
		}
	}
	return g
}

// stripMaxtermSenderArcs removes every arc whose sender is a maxterm
// node, keeping the frozen arcs of earlier terms as spec.md §4.5's cERGM
// starting arc set.
func stripMaxtermSenderArcs(g *graph.Graph) {
	for g.MaxTermSenderArcCount() > 0 {
		a := g.MaxTermSenderArcAt(0)
		_ = g.RemoveArc(a.I, a.J)
	}
}
