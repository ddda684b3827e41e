package statistic

import "github.com/katalvlaran/ergm/graph"

// NewSender binds a binary nodal attribute to the Sender statistic: the
// count of arcs whose source carries the attribute. Adding i->j
// contributes 1 when i's value is 1 and 0 otherwise (including NA).
func NewSender(value func(v int) int8) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) == 1 {
			return 1
		}
		return 0
	}
}

// NewReceiver is NewSender's target-side mirror.
func NewReceiver(value func(v int) int8) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(j) == 1 {
			return 1
		}
		return 0
	}
}

// NewInteraction binds a binary attribute to the Interaction statistic: an
// arc contributes 1 only when both endpoints carry the attribute.
func NewInteraction(value func(v int) int8) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if value(i) == 1 && value(j) == 1 {
			return 1
		}
		return 0
	}
}

// NewActivity binds a binary attribute to the Activity statistic: an arc
// contributes 1 for each endpoint that carries the attribute, so 0, 1 or 2
// (degree contribution restricted to the flagged subpopulation).
func NewActivity(value func(v int) int8) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		var c float64
		if value(i) == 1 {
			c++
		}
		if value(j) == 1 {
			c++
		}
		return c
	}
}

// NewBinaryPairInteraction binds two (possibly distinct) binary attributes
// to a cross-attribute interaction: an arc contributes 1 when the source
// carries attrA and the target carries attrB.
func NewBinaryPairInteraction(valueA, valueB func(v int) int8) Func {
	return func(g *graph.Graph, i, j int, isDelete bool) float64 {
		if valueA(i) == 1 && valueB(j) == 1 {
			return 1
		}
		return 0
	}
}
