package statistic

import (
	"math"

	"github.com/katalvlaran/ergm/graph"
)

// NewContinuousSender binds a continuous nodal attribute to the
// ContinuousSender statistic: an arc contributes its source's attribute
// value. A NaN value (spec.md's "missing attribute" convention) contributes
// zero rather than propagating NaN through the estimator.
func NewContinuousSender(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return nanToZero(value(i))
	}
}

// NewContinuousReceiver is NewContinuousSender's target-side mirror.
func NewContinuousReceiver(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		return nanToZero(value(j))
	}
}

// NewContinuousActivity sums the attribute value over both endpoints of the
// arc. Either endpoint's value being NaN makes the whole term 0 (spec.md
// §4.2: a reference to a missing attribute zeroes the statistic, it does
// not substitute a zero operand and keep combining).
func NewContinuousActivity(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) {
			return 0
		}
		return vi + vj
	}
}

// NewContinuousDiff contributes the absolute difference between endpoint
// attribute values. Either endpoint's value being NaN makes the whole term
// 0, per spec.md §4.2 and the §8 scenario over attribute [1.0, NaN].
func NewContinuousDiff(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) {
			return 0
		}
		d := vi - vj
		if d < 0 {
			return -d
		}
		return d
	}
}

// NewContinuousSum contributes the sum of endpoint attribute values. Either
// endpoint's value being NaN makes the whole term 0 (see NewContinuousDiff).
func NewContinuousSum(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) {
			return 0
		}
		return vi + vj
	}
}

// NewContinuousDiffReciprocity gates ContinuousDiff by reciprocation: the
// absolute difference only counts for arcs whose reverse already exists.
func NewContinuousDiffReciprocity(value func(v int) float64) Func {
	diff := NewContinuousDiff(value)
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if !g.IsArc(j, i) {
			return 0
		}
		return diff(g, i, j, isDelete)
	}
}

// NewContinuousDiffSign contributes the sign of (value(i) - value(j)).
// Either endpoint's value being NaN makes the whole term 0.
func NewContinuousDiffSign(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) {
			return 0
		}
		return signum(vi - vj)
	}
}

// NewContinuousDiffDirSR contributes the one-sided positive difference
// max(0, value(i)-value(j)) (directed, sender-minus-receiver orientation).
// Either endpoint's value being NaN makes the whole term 0.
func NewContinuousDiffDirSR(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) || vi < vj {
			return 0
		}
		return vi - vj
	}
}

// NewContinuousDiffDirRS is NewContinuousDiffDirSR's receiver-minus-sender
// mirror, max(0, value(j)-value(i)).
func NewContinuousDiffDirRS(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		vi, vj := value(i), value(j)
		if math.IsNaN(vi) || math.IsNaN(vj) || vj < vi {
			return 0
		}
		return vj - vi
	}
}

// NewBipartiteTwoPathDiffSum binds a continuous attribute shared across
// both bipartite sides to the two-path-weighted difference-sum statistic:
// for every other A-node sharing a B-neighbour with the arc's A endpoint,
// the absolute attribute difference contributes once; a pair where either
// side's value is NaN contributes nothing for that pair rather than
// substituting zero into the difference.
func NewBipartiteTwoPathDiffSum(value func(v int) float64) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		a, b := bipartiteEndpoints(g, i, j)
		var total float64
		for _, a2 := range g.Neighbors(b) {
			if a2 == a {
				continue
			}
			va, va2 := value(a), value(a2)
			if math.IsNaN(va) || math.IsNaN(va2) {
				continue
			}
			d := va - va2
			if d < 0 {
				d = -d
			}
			total += d
		}
		return total
	}
}

// nanToZero implements spec.md's "missing continuous attribute contributes
// zero" convention for single-endpoint statistics (ContinuousSender,
// ContinuousReceiver). Two-endpoint statistics must instead zero the
// entire term when either endpoint is NaN rather than substituting zero
// into one operand and still combining — see NewContinuousDiff et al.
func nanToZero(x float64) float64 {
	if x != x {
		return 0
	}
	return x
}
