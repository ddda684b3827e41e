package statistic

import "github.com/katalvlaran/ergm/graph"

// Func is the uniform shape every change statistic takes once
// paramreg.Bind has resolved its configuration-time parameters (attribute
// slot, lambda, exponent). It reports the change in the statistic's value
// produced by adding the currently-absent dyad (i,j); callers wanting the
// delete-direction value negate the result (spec.md §4.2), except for the
// handful of statistics that need the dyad physically present while being
// evaluated — those consult isDelete themselves and reinstate/restore the
// dyad around their own computation (MismatchingTransitiveTies; see
// nodal_categorical.go).
type Func func(g *graph.Graph, i, j int, isDelete bool) float64

// Entry binds one statistic's name and callable to the tags
// CalcChangeStats and EmptyGraphStats need: whether it is one of the three
// Isolates-family statistics (identified by tag, not function-pointer
// equality — spec.md §9).
type Entry struct {
	Name        string
	Fn          Func
	IsIsolates  bool
	IsIsolatesA bool
	IsIsolatesB bool
}

// CalcChangeStats implements spec.md §4.2's aggregate call: entries must
// already be in the fixed order structural -> nodal -> dyadic ->
// interaction (paramreg.Registry.Bind guarantees this). Each entry's Δ is
// written to out[k]; the return value is the signed inner product used as
// the log-ratio of unnormalized probabilities by every sampler.
//
// Complexity: O(len(entries)) calls to each Fn, each itself sub-linear
// where a two-path cache backs it.
func CalcChangeStats(g *graph.Graph, i, j int, theta []float64, isDelete bool, entries []Entry, out []float64) float64 {
	sign := 1.0
	if isDelete {
		sign = -1.0
	}
	var total float64
	for k, e := range entries {
		delta := e.Fn(g, i, j, isDelete)
		out[k] = delta
		total += theta[k] * sign * delta
	}
	return total
}

// EmptyGraphStats returns the statistic vector of the N-node no-edge graph:
// zero for every statistic except the Isolates family, which starts at the
// full node count on each side it covers (spec.md §4.2).
func EmptyGraphStats(g *graph.Graph, entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for k, e := range entries {
		switch {
		case e.IsIsolates:
			out[k] = float64(g.N())
		case e.IsIsolatesA:
			out[k] = float64(g.NA())
		case e.IsIsolatesB:
			out[k] = float64(g.N() - g.NA())
		}
	}
	return out
}
