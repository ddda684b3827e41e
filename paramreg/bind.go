package paramreg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// Bind resolves every configuration term against the loaded attribute
// table and returns the fixed-order (structural, nodal, dyadic,
// interaction) statistic.Entry slice statistic.CalcChangeStats and
// statistic.EmptyGraphStats expect. Terms are stable-sorted by Kind;
// within a Kind they keep the configuration file's own order.
func (r *Registry) Bind(specs []TermSpec, table *attrs.Table) ([]statistic.Entry, error) {
	entries := make([]statistic.Entry, 0, len(specs))
	kinds := make([]Kind, 0, len(specs))
	for _, spec := range specs {
		f, ok := r.factories[spec.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTerm, spec.Name)
		}
		b, err := f(table, spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, statistic.Entry{
			Name:        spec.Name,
			Fn:          b.fn,
			IsIsolates:  b.isIsolates,
			IsIsolatesA: b.isIsolatesA,
			IsIsolatesB: b.isIsolatesB,
		})
		kinds = append(kinds, b.kind)
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return kinds[order[a]] < kinds[order[b]] })

	sorted := make([]statistic.Entry, len(entries))
	for dst, src := range order {
		sorted[dst] = entries[src]
	}
	return sorted, nil
}

// BindWithTheta does what Bind does but also permutes a caller-supplied
// initial-theta vector (configfile.Config.InitialTheta's output) by the
// same structural/nodal/dyadic/interaction stable sort, so theta[k]
// continues to pair with entries[k] even when a configuration file's own
// term order doesn't already match Kind order (e.g. a Dyadic-kind term
// such as JaccardSimilarity declared inside attrParams rather than
// dyadicParams).
func (r *Registry) BindWithTheta(specs []TermSpec, theta0 []float64, table *attrs.Table) ([]statistic.Entry, []float64, error) {
	if len(specs) != len(theta0) {
		return nil, nil, fmt.Errorf("paramreg: %d terms but %d initial theta values", len(specs), len(theta0))
	}
	entries := make([]statistic.Entry, 0, len(specs))
	kinds := make([]Kind, 0, len(specs))
	for _, spec := range specs {
		f, ok := r.factories[spec.Name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTerm, spec.Name)
		}
		b, err := f(table, spec)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, statistic.Entry{
			Name:        spec.Name,
			Fn:          b.fn,
			IsIsolates:  b.isIsolates,
			IsIsolatesA: b.isIsolatesA,
			IsIsolatesB: b.isIsolatesB,
		})
		kinds = append(kinds, b.kind)
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return kinds[order[a]] < kinds[order[b]] })

	sortedEntries := make([]statistic.Entry, len(entries))
	sortedTheta := make([]float64, len(entries))
	for dst, src := range order {
		sortedEntries[dst] = entries[src]
		sortedTheta[dst] = theta0[src]
	}
	return sortedEntries, sortedTheta, nil
}
