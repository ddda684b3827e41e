package paramreg

import (
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// registerStructural wires every parameterless and lambda-parameterized
// structural statistic (directed, undirected, bipartite).
func (r *Registry) registerStructural() {
	plain := func(name string, fn statistic.Func) {
		r.register(name, Structural, func(*attrs.Table, TermSpec) (statistic.Func, error) { return fn, nil })
	}
	lambda := func(name string, ctor func(lambda float64) statistic.Func) {
		r.register(name, Structural, func(_ *attrs.Table, spec TermSpec) (statistic.Func, error) {
			return ctor(spec.Lambda), nil
		})
	}

	// Directed.
	plain("Arc", statistic.Arc)
	plain("Reciprocity", statistic.Reciprocity)
	plain("Sink", statistic.Sink)
	plain("Source", statistic.Source)
	r.registerTagged("Isolates", Structural, false, false, func(*attrs.Table, TermSpec) (statistic.Func, error) {
		return statistic.Isolates, nil
	})
	plain("TwoPath", statistic.TwoPath)
	plain("InTwoStars", statistic.InTwoStars)
	plain("OutTwoStars", statistic.OutTwoStars)
	plain("TransitiveTriad", statistic.TransitiveTriad)
	plain("CyclicTriad", statistic.CyclicTriad)
	plain("Loop", statistic.Loop)
	lambda("AltInStars", statistic.NewAltInStars)
	lambda("AltOutStars", statistic.NewAltOutStars)
	lambda("AltKTrianglesT", statistic.NewAltKTrianglesT)
	lambda("AltKTrianglesC", statistic.NewAltKTrianglesC)
	lambda("AltKTrianglesD", statistic.NewAltKTrianglesD)
	lambda("AltKTrianglesU", statistic.NewAltKTrianglesU)
	lambda("AltTwoPathsT", statistic.NewAltTwoPathsT)
	lambda("AltTwoPathsD", statistic.NewAltTwoPathsD)
	lambda("AltTwoPathsU", statistic.NewAltTwoPathsU)
	lambda("AltTwoPathsTD", statistic.NewAltTwoPathsTD)

	// Undirected.
	plain("Edge", statistic.Edge)
	r.registerTagged("IsolateEdges", Structural, false, false, func(*attrs.Table, TermSpec) (statistic.Func, error) {
		return statistic.IsolateEdges, nil
	})
	plain("TwoStars", statistic.TwoStars)
	plain("ThreePaths", statistic.ThreePaths)
	plain("FourCycles", statistic.FourCycles)
	lambda("AltStars", statistic.NewAltStars)
	lambda("AltKTriangles", statistic.NewAltKTriangles)
	lambda("AltTwoPaths", statistic.NewAltTwoPaths)

	// Bipartite.
	r.registerTagged("IsolatesA", Structural, true, false, func(*attrs.Table, TermSpec) (statistic.Func, error) {
		return statistic.BipartiteIsolatesA, nil
	})
	r.registerTagged("IsolatesB", Structural, false, true, func(*attrs.Table, TermSpec) (statistic.Func, error) {
		return statistic.BipartiteIsolatesB, nil
	})
	plain("BipartiteStarsA", statistic.BipartiteStarsA)
	plain("BipartiteStarsB", statistic.BipartiteStarsB)
	lambda("BipartiteAltStarsA", statistic.NewBipartiteAltStarsA)
	lambda("BipartiteAltStarsB", statistic.NewBipartiteAltStarsB)
	lambda("BipartiteAltKCycles", statistic.NewBipartiteAltKCycles)
	lambda("BipartiteAltK4Cycles", statistic.NewBipartiteAltK4Cycles)
}
