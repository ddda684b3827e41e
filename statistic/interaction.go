package statistic

import "github.com/katalvlaran/ergm/graph"

// Product combines two statistics multiplicatively, the general form of the
// several named *Interaction statistics in the other group files (Loop,
// Binary, Matching). No paramreg registry entry is built with it.
func Product(a, b Func) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return a(g, i, j, isDelete) * b(g, i, j, isDelete)
	}
}

// Sum combines two statistics additively.
func Sum(a, b Func) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return a(g, i, j, isDelete) + b(g, i, j, isDelete)
	}
}

// Scale multiplies a statistic's output by a fixed constant. No paramreg
// registry entry is built with it, and configfile parses no per-term weight.
func Scale(c float64, a Func) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return c * a(g, i, j, isDelete)
	}
}
