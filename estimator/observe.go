package estimator

import (
	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
)

// ObservedStats computes the loaded graph's statistic vector t by
// replaying calc_change_stats from the empty graph through to the loaded
// graph (spec.md §4.4): each existing tie is removed one at a time
// (restoring the "currently-absent dyad" precondition every statistic.Func
// assumes), its add-direction delta accumulated, and the graph is fully
// restored by reinserting every removed tie once the pass completes.
func ObservedStats(g *graph.Graph, entries []statistic.Entry) []float64 {
	t := make([]float64, len(entries))
	out := make([]float64, len(entries))
	ones := make([]float64, len(entries))
	for k := range ones {
		ones[k] = 1
	}

	if g.Mode() == graph.Directed {
		arcs := append([]graph.Arc(nil), g.AllArcs()...)
		for _, a := range arcs {
			_ = g.RemoveArc(a.I, a.J)
			statistic.CalcChangeStats(g, a.I, a.J, ones, false, entries, out)
			for k, v := range out {
				t[k] += v
			}
		}
		for _, a := range arcs {
			_ = g.InsertArc(a.I, a.J)
		}
		return t
	}

	edges := append([]graph.Edge(nil), g.AllEdges()...)
	for _, e := range edges {
		_ = g.RemoveEdge(e.I, e.J)
		statistic.CalcChangeStats(g, e.I, e.J, ones, false, entries, out)
		for k, v := range out {
			t[k] += v
		}
	}
	for _, e := range edges {
		_ = g.InsertEdge(e.I, e.J)
	}
	return t
}
