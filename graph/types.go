package graph

import (
	"errors"

	"github.com/katalvlaran/ergm/twopath"
)

// Sentinel errors for graph store operations. Callers branch on these with
// errors.Is; none is ever wrapped with a formatted string at the definition
// site.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrLoopNotAllowed indicates i==j was rejected because loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrArcExists indicates InsertArc was called on an already-present arc.
	ErrArcExists = errors.New("graph: arc already exists")

	// ErrArcNotFound indicates RemoveArc was called on an absent arc.
	ErrArcNotFound = errors.New("graph: arc not found")

	// ErrEdgeExists indicates InsertEdge was called on an already-present edge.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates RemoveEdge was called on an absent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrWrongMode indicates a method was called on a Graph built in a
	// mode it doesn't apply to (e.g. InsertArc on an Undirected graph).
	ErrWrongMode = errors.New("graph: operation not valid for this graph's mode")

	// ErrIntraModeEdge indicates an attempted bipartite edge whose endpoints
	// share a mode; spec.md §3 calls this a contract violation.
	ErrIntraModeEdge = errors.New("graph: bipartite edge within one mode")
)

// Mode fixes which of the three dyad spaces a Graph represents. A Graph is
// exactly one Mode for its whole lifetime (spec.md §3).
type Mode int

const (
	Directed Mode = iota
	Undirected
	Bipartite
)

func (m Mode) String() string {
	switch m {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	case Bipartite:
		return "bipartite"
	default:
		return "unknown"
	}
}

// BipartiteSide names which partition a bipartite node id falls on.
type BipartiteSide int

const (
	SideA BipartiteSide = iota
	SideB
)

// Arc is one directed dyad i->j, as stored in the flat arc list.
type Arc struct {
	I, J int
}

// Edge is one undirected dyad {i,j}, as stored in the flat edge list. For
// undirected graphs I is always the smaller id; for bipartite graphs I is
// always the mode-A endpoint.
type Edge struct {
	I, J int
}

// Graph is the fixed-N, single-mode, single-owner graph store. The zero
// value is not usable; construct with NewDirected, NewUndirected, or
// NewBipartite.
type Graph struct {
	n    int
	mode Mode
	nA   int // bipartite mode-A count; unused otherwise

	allowLoops        bool
	forbidReciprocity bool // directed only; informational for dyad counting

	// Directed adjacency. outAdj[i] lists j such that i->j exists;
	// inAdj[i] lists j such that j->i exists. Element order within a
	// sub-list is not meaningful: RemoveArc swaps the removed entry with
	// the last one (spec.md §9), and no statistic may depend on order.
	outAdj [][]int
	inAdj  [][]int

	// Undirected/bipartite adjacency: neighbors[i] lists every v adjacent
	// to i (for bipartite, always of the opposite side).
	neighbors [][]int

	allArcs []Arc
	arcPos  map[int64]int // packed (i,j) -> index into allArcs

	allEdges []Edge
	edgePos  map[int64]int // packed canonical (i,j) -> index into allEdges

	cacheKind twopath.Kind
	mix2p     twopath.Cache // directed
	out2p     twopath.Cache // directed
	in2p      twopath.Cache // directed
	twoP      twopath.Cache // undirected
	aTwoP     twopath.Cache // bipartite, pairs within mode A
	bTwoP     twopath.Cache // bipartite, pairs within mode B

	snowball *snowballState // nil unless WithSnowball was given
	cergm    *cergmState    // nil unless WithCERGM was given
}

func packKey(i, j int) int64 {
	return int64(i)<<32 | int64(uint32(j))
}

func canonicalUndirected(i, j int) (int, int) {
	if i <= j {
		return i, j
	}
	return j, i
}

// N returns the fixed node count.
func (g *Graph) N() int { return g.n }

// NA returns the mode-A node count; only meaningful for Bipartite graphs.
func (g *Graph) NA() int { return g.nA }

// Mode returns the graph's fixed mode.
func (g *Graph) Mode() Mode { return g.mode }

// AllowLoops reports whether self-loops are permitted (directed mode only).
func (g *Graph) AllowLoops() bool { return g.allowLoops }

// ForbidReciprocity reports whether adding j->i while i->j exists is
// disallowed (directed mode only); enforced by package sampler, consulted
// here only for admissible-dyad counting.
func (g *Graph) ForbidReciprocity() bool { return g.forbidReciprocity }

// ModeOf returns which side of the bipartition v falls on. Undefined for
// non-Bipartite graphs.
func (g *Graph) ModeOf(v int) BipartiteSide {
	if v < g.nA {
		return SideA
	}
	return SideB
}

func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= g.n {
		return ErrNodeOutOfRange
	}
	return nil
}

// IsSnowballConditional reports whether conditional-on-outer-wave
// estimation restrictions apply.
func (g *Graph) IsSnowballConditional() bool { return g.snowball != nil }

// IsCERGM reports whether citation-ERGM term-freezing restrictions apply.
func (g *Graph) IsCERGM() bool { return g.cergm != nil }
