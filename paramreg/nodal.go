package paramreg

import (
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// registerNodal wires the binary, categorical, and continuous nodal and
// dyadic-covariate statistics, each reading its attribute name(s) from the
// term's Attr1/Attr2 fields.
func (r *Registry) registerNodal() {
	r.register("Sender", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := binaryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewSender(v), nil
	})
	r.register("Receiver", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := binaryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewReceiver(v), nil
	})
	r.register("Interaction", Interaction, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := binaryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewInteraction(v), nil
	})
	r.register("Activity", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := binaryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewActivity(v), nil
	})
	r.register("BinaryPairInteraction", Interaction, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		a, err := binaryAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		b, err := binaryAccessor(table, spec.Attr2)
		if err != nil {
			return nil, err
		}
		return statistic.NewBinaryPairInteraction(a, b), nil
	})
	r.register("LoopInteraction", Interaction, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewLoopInteraction(v), nil
	})

	r.register("Matching", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMatching(v), nil
	})
	r.register("Mismatching", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMismatching(v), nil
	})
	r.register("MatchingReciprocity", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMatchingReciprocity(v), nil
	})
	r.register("MismatchingReciprocity", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMismatchingReciprocity(v), nil
	})
	r.register("MismatchingTransitiveTriad", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMismatchingTransitiveTriad(v), nil
	})
	r.register("MismatchingTransitiveTies", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewMismatchingTransitiveTies(v), nil
	})
	r.register("BipartiteTwoPathMatching", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewBipartiteTwoPathMatching(v), nil
	})
	r.register("BipartiteTwoPathMismatching", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewBipartiteTwoPathMismatching(v), nil
	})
	r.register("NodematchAlpha", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		weight := categoryWeightFromCounts(table, spec.Attr1)
		return statistic.NewNodematchAlpha(spec.Lambda, v, weight), nil
	})
	r.register("NodematchBeta", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := categoricalAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		weight := categoryWeightFromCounts(table, spec.Attr1)
		return statistic.NewNodematchBeta(spec.Lambda, v, weight), nil
	})

	r.register("ContinuousSender", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousSender(v), nil
	})
	r.register("ContinuousReceiver", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousReceiver(v), nil
	})
	r.register("ContinuousActivity", Nodal, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousActivity(v), nil
	})
	r.register("ContinuousDiff", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousDiff(v), nil
	})
	r.register("ContinuousSum", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousSum(v), nil
	})
	r.register("ContinuousDiffReciprocity", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousDiffReciprocity(v), nil
	})
	r.register("ContinuousDiffSign", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousDiffSign(v), nil
	})
	r.register("ContinuousDiffDirSR", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousDiffDirSR(v), nil
	})
	r.register("ContinuousDiffDirRS", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewContinuousDiffDirRS(v), nil
	})
	r.register("BipartiteTwoPathDiffSum", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		v, err := continuousAccessor(table, spec.Attr1)
		if err != nil {
			return nil, err
		}
		return statistic.NewBipartiteTwoPathDiffSum(v), nil
	})
}

// categoryWeightFromCounts builds the per-category population-share weight
// NodematchAlpha/Beta use, computed once at bind time from the loaded
// categorical array itself (spec.md gives no separate weight file, so the
// table's own category frequencies serve as the differential-homophily
// weight).
func categoryWeightFromCounts(table *attrs.Table, name string) func(cat int) float64 {
	counts := make(map[int]int)
	for v := 0; v < table.N(); v++ {
		c, err := table.Categorical(name, v)
		if err != nil {
			continue
		}
		counts[c]++
	}
	n := float64(table.N())
	return func(cat int) float64 {
		if n == 0 {
			return 0
		}
		return float64(counts[cat]) / n
	}
}
