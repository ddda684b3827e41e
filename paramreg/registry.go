package paramreg

import (
	"fmt"

	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// built is a resolved term: its bound statistic.Func plus the tags
// statistic.CalcChangeStats/EmptyGraphStats need.
type built struct {
	fn          statistic.Func
	kind        Kind
	isIsolates  bool
	isIsolatesA bool
	isIsolatesB bool
}

// factory constructs a bound statistic from a configuration term and the
// loaded attribute table.
type factory func(table *attrs.Table, spec TermSpec) (built, error)

// Registry is a resolved set of factories keyed by configuration name.
// NewRegistry returns one pre-populated with every statistic the
// statistic package exports; callers rarely need more than one instance
// per process.
type Registry struct {
	factories map[string]factory
}

// NewRegistry builds the standard registry covering every statistic family
// in statistic/.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]factory)}
	r.registerStructural()
	r.registerNodal()
	r.registerSetCategory()
	r.registerDyadic()
	return r
}

func (r *Registry) register(name string, kind Kind, f func(table *attrs.Table, spec TermSpec) (statistic.Func, error)) {
	r.factories[name] = func(table *attrs.Table, spec TermSpec) (built, error) {
		fn, err := f(table, spec)
		if err != nil {
			return built{}, fmt.Errorf("paramreg: %s: %w", name, err)
		}
		return built{fn: fn, kind: kind}, nil
	}
}

func (r *Registry) registerTagged(name string, kind Kind, isolatesA, isolatesB bool, f func(table *attrs.Table, spec TermSpec) (statistic.Func, error)) {
	r.factories[name] = func(table *attrs.Table, spec TermSpec) (built, error) {
		fn, err := f(table, spec)
		if err != nil {
			return built{}, fmt.Errorf("paramreg: %s: %w", name, err)
		}
		return built{fn: fn, kind: kind, isIsolates: !isolatesA && !isolatesB, isIsolatesA: isolatesA, isIsolatesB: isolatesB}, nil
	}
}
