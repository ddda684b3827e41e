package sampler

import (
	"math"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
)

// Run implements the Basic sampler (spec.md §4.3.1): m proposals, each
// drawing an unrestricted dyad, computing the change statistic on the
// common "add" baseline, and accepting with probability exp(total)
// (implicitly clamped to 1 by the uniform draw).
func Run(g *graph.Graph, m int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	res := newResult(len(opts.Entries))
	out := make([]float64, len(opts.Entries))

	for step := 0; step < m; step++ {
		i, j := DrawDyad(g, opts.Rng)
		isDelete := isTie(g, i, j)

		if !isDelete && !LegalAdd(g, i, j, opts.ForbidReciprocity) {
			continue
		}
		if isDelete && !LegalDelete(g, i, j) {
			continue
		}

		if isDelete {
			if err := toggle(g, i, j, false); err != nil {
				return res, err
			}
		}

		total := statistic.CalcChangeStats(g, i, j, opts.Theta, isDelete, opts.Entries, out)
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

func accumulate(res Result, out []float64, isDelete bool) {
	dst := res.AddStats
	if isDelete {
		dst = res.DelStats
	}
	for k, v := range out {
		dst[k] += v
	}
}
