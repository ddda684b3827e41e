package paramreg

import (
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/statistic"
)

// registerDyadic wires the geographic/Euclidean distance covariates, each
// reading a pair of continuous attributes (Attr1, Attr2).
func (r *Registry) registerDyadic() {
	r.register("GeoDistance", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		lat, lon, err := continuousPair(table, spec)
		if err != nil {
			return nil, err
		}
		return statistic.NewGeoDistance(lat, lon), nil
	})
	r.register("LogGeoDistance", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		lat, lon, err := continuousPair(table, spec)
		if err != nil {
			return nil, err
		}
		return statistic.NewLogGeoDistance(lat, lon), nil
	})
	r.register("EuclideanDistance", Dyadic, func(table *attrs.Table, spec TermSpec) (statistic.Func, error) {
		x, y, err := continuousPair(table, spec)
		if err != nil {
			return nil, err
		}
		return statistic.NewEuclideanDistance(x, y), nil
	})
}

func continuousPair(table *attrs.Table, spec TermSpec) (func(v int) float64, func(v int) float64, error) {
	a, err := continuousAccessor(table, spec.Attr1)
	if err != nil {
		return nil, nil, err
	}
	b, err := continuousAccessor(table, spec.Attr2)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
