package paramreg

import "github.com/katalvlaran/ergm/attrs"

// binaryAccessor resolves a configuration attribute name to a value
// function over a loaded table, failing at bind time (not per-call) if the
// slot was never populated.
func binaryAccessor(table *attrs.Table, name string) (func(v int) int8, error) {
	if !table.HasBinary(name) {
		return nil, ErrMissingAttr
	}
	return func(v int) int8 {
		val, _ := table.Binary(name, v)
		return val
	}, nil
}

func categoricalAccessor(table *attrs.Table, name string) (func(v int) int, error) {
	if !table.HasCategorical(name) {
		return nil, ErrMissingAttr
	}
	return func(v int) int {
		val, _ := table.Categorical(name, v)
		return val
	}, nil
}

func continuousAccessor(table *attrs.Table, name string) (func(v int) float64, error) {
	if !table.HasContinuous(name) {
		return nil, ErrMissingAttr
	}
	return func(v int) float64 {
		val, _ := table.Continuous(name, v)
		return val
	}, nil
}

func setCategoryAccessor(table *attrs.Table, name string) (func(v int) []attrs.SetState, error) {
	if !table.HasSetCategory(name) {
		return nil, ErrMissingAttr
	}
	return func(v int) []attrs.SetState {
		val, _ := table.SetCategory(name, v)
		return val
	}, nil
}
