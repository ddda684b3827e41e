package paramreg

import (
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// registerSetCategory wires the set-of-category Jaccard and
// matching-interaction statistics.
func (r *Registry) registerSetCategory() {
	r.register("JaccardSimilarity", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		sets, err := setCategoryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewJaccardSimilarity(sets), nil
	})
	r.register("MatchingInteraction", Interaction, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		sets, err := setCategoryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		binary, err := binaryAccessor(table, spec.Attr2)
		if err != nil {
			return nil, err
		}
		return statistic.NewMatchingInteraction(sets, binary), nil
	})
}
