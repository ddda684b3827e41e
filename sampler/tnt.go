package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
)

// RunTNT implements the Tie-No-Tie sampler (spec.md §4.3.3): add and
// delete proposed with equal probability (forced add on an empty graph),
// with an explicit Metropolis-Hastings correction for the asymmetric
// proposal distribution added to the statistic log-ratio before
// exponentiating.
func RunTNT(g *graph.Graph, m int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	res := newResult(len(opts.Entries))
	out := make([]float64, len(opts.Entries))

	for step := 0; step < m; step++ {
		a, d := tieAndDyadCounts(g)
		wantAdd := a == 0 || opts.Rng.Float64() < 0.5

		var i, j int
		var isDelete bool
		if wantAdd {
			var ok bool
			i, j, ok = proposeTNTAdd(g, opts.Rng, opts.ForbidReciprocity)
			if !ok {
				continue
			}
			isDelete = false
		} else {
			ci, cj, ok := DrawDeleteCandidate(g, opts.Rng)
			if !ok || !LegalDelete(g, ci, cj) {
				continue
			}
			i, j, isDelete = ci, cj, true
		}

		if isDelete {
			if err := toggle(g, i, j, false); err != nil {
				return res, err
			}
		}

		total := statistic.CalcChangeStats(g, i, j, opts.Theta, isDelete, opts.Entries, out)
		total += tntCorrection(a, d, isDelete)
		res.Proposed++

		accept := opts.Rng.Float64() < math.Exp(total)
		if accept {
			res.Accepted++
			if !isDelete {
				if err := toggle(g, i, j, true); err != nil {
					return res, err
				}
			}
			accumulate(res, out, isDelete)
		} else if isDelete {
			if err := toggle(g, i, j, true); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// tieAndDyadCounts returns (A, D): the current tie count (restricted to
// the maxterm-sender arc list under cERGM) and the admissible-dyad count
// (already restricted by graph.Graph.DyadCount under snowball/cERGM).
func tieAndDyadCounts(g *graph.Graph) (a, d float64) {
	d = float64(g.DyadCount())
	switch {
	case g.IsCERGM():
		a = float64(g.MaxTermSenderArcCount())
	case g.Mode() == graph.Directed:
		a = float64(g.ArcCount())
	default:
		a = float64(g.EdgeCount())
	}
	return a, d
}

// tntCorrection is the explicit MH correction spec.md §4.3.3 specifies for
// TNT's asymmetric proposal distribution.
func tntCorrection(a, d float64, isDelete bool) float64 {
	if isDelete {
		if a == 1 {
			return math.Log(1 / (0.5*d + 0.5))
		}
		return math.Log(a / (d + a))
	}
	if a == 0 {
		return math.Log(0.5*d + 0.5)
	}
	return math.Log(1 + d/(a+1))
}

// proposeTNTAdd draws a currently-absent dyad, redrawing under
// forbid-reciprocity exactly as the IFD add proposal does.
func proposeTNTAdd(g *graph.Graph, rng *rand.Rand, forbidReciprocity bool) (i, j int, ok bool) {
	for tries := 0; tries < 10000; tries++ {
		i, j = DrawAddCandidate(g, rng)
		if LegalAdd(g, i, j, forbidReciprocity) {
			return i, j, true
		}
	}
	return 0, 0, false
}
