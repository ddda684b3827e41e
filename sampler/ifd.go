package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
)

// IFDState carries the Improved Fixed Density sampler's auxiliary
// parameter V and the add/delete alternation flag across successive
// RunIFD calls (one call per Algorithm S/EE outer or inner step).
type IFDState struct {
	V             float64
	LastAccepted  bool // true once at least one move has been accepted
	LastWasDelete bool
}

// NewIFDState computes V's initial value (spec.md §4.3.2): theta_Arc plus
// arc_correction(g) = log((D-A)/(A+1)), D the admissible-dyad count, A the
// current arc count. The alternation flag starts as "last was delete" so
// the very first proposal is an add, matching the "forced add on an empty
// graph" behaviour TNT also uses.
func NewIFDState(g *graph.Graph, thetaArc float64) IFDState {
	d := float64(g.DyadCount())
	a := float64(g.ArcCount())
	return IFDState{V: thetaArc + math.Log((d-a)/(a+1)), LastWasDelete: true}
}

// RunIFD implements the IFD sampler (spec.md §4.3.2): strict add/delete
// alternation among accepted moves, an acceptance ratio shifted by the
// auxiliary parameter V, and V's online update from the ratio of proposed
// add/delete counts. Returns the updated state for the next call.
func RunIFD(g *graph.Graph, m int, opts Options, state IFDState) (Result, IFDState, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, state, err
	}
	res := newResult(len(opts.Entries))
	out := make([]float64, len(opts.Entries))

	for step := 0; step < m; step++ {
		wantAdd := state.LastWasDelete
		i, j, isDelete, ok := proposeIFD(g, opts.Rng, wantAdd, opts.ForbidReciprocity)
		if !ok {
			continue
		}

		if isDelete {
			res.ProposedDeletes++
			if err := toggle(g, i, j, false); err != nil {
				return res, state, err
			}
		} else {
			res.ProposedAdds++
		}
		res.Proposed++

		total := statistic.CalcChangeStats(g, i, j, opts.Theta, isDelete, opts.Entries, out)
		sign := 1.0
		if isDelete {
			sign = -1.0
		}
		total += sign * state.V

		accept := opts.Rng.Float64() < math.Exp(total)
		if accept {
			res.Accepted++
			if !isDelete {
				if err := toggle(g, i, j, true); err != nil {
					return res, state, err
				}
			}
			accumulate(res, out, isDelete)
			state.LastWasDelete = isDelete
			state.LastAccepted = true
		} else if isDelete {
			if err := toggle(g, i, j, true); err != nil {
				return res, state, err
			}
		}
	}

	nAdd, nDel := float64(res.ProposedAdds), float64(res.ProposedDeletes)
	if nAdd+nDel > 0 {
		stepSize := opts.IFDK * (nDel - nAdd) * (nDel - nAdd) / ((nDel + nAdd) * (nDel + nAdd))
		if nDel > nAdd {
			state.V -= stepSize
		} else {
			state.V += stepSize
		}
	}
	res.DzArc = nDel - nAdd

	return res, state, nil
}

// proposeIFD draws the next proposal in the requested direction, falling
// back to the opposite direction when the graph has no ties to delete
// from, and honoring forbid-reciprocity/snowball-delete legality by
// redrawing (spec.md §4.3.4).
func proposeIFD(g *graph.Graph, rng *rand.Rand, wantAdd, forbidReciprocity bool) (i, j int, isDelete, ok bool) {
	if wantAdd {
		for tries := 0; tries < 10000; tries++ {
			i, j = DrawAddCandidate(g, rng)
			if LegalAdd(g, i, j, forbidReciprocity) {
				return i, j, false, true
			}
		}
		return 0, 0, false, false
	}
	for tries := 0; tries < 10000; tries++ {
		ci, cj, has := DrawDeleteCandidate(g, rng)
		if !has {
			return proposeIFD(g, rng, true, forbidReciprocity)
		}
		if LegalDelete(g, ci, cj) {
			return ci, cj, true, true
		}
	}
	return 0, 0, false, false
}
