package graph

import "github.com/katalvlaran/ergm/twopath"

// Option configures a Graph at construction time. Modeled on the teacher
// library's functional-option GraphOption/BuilderOption pattern: options
// mutate a not-yet-published Graph, are applied in order, and later options
// override earlier ones.
type Option func(g *Graph)

// WithLoops permits self-loops. Directed mode only; incompatible with
// snowball-conditional and cERGM restrictions (spec.md §4.3.4).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithReciprocityForbidden marks that an add proposal for j->i is illegal
// while i->j exists. Directed mode only; enforcement lives in package
// sampler, this only affects admissible-dyad counting here.
func WithReciprocityForbidden() Option {
	return func(g *Graph) { g.forbidReciprocity = true }
}

// WithTwoPathCache selects which twopath.Cache implementation backs every
// two-path table this Graph maintains. Defaults to twopath.Dense.
func WithTwoPathCache(kind twopath.Kind) Option {
	return func(g *Graph) { g.cacheKind = kind }
}

// WithSnowball enables snowball-conditional bookkeeping: zones[v] is the
// wave at which v was discovered (0 = seed), and maxZone is the outermost
// wave. prev_wave_degree is then maintained on every insert/remove.
func WithSnowball(zones []int, maxZone int) Option {
	return func(g *Graph) {
		g.snowball = newSnowballState(zones, maxZone)
	}
}

// WithCERGM enables citation-ERGM bookkeeping: terms[v] is v's time period,
// and arcs whose sender is in the latest term are tracked in
// all_maxtermsender_arcs. Directed mode only.
func WithCERGM(terms []int) Option {
	return func(g *Graph) {
		g.cergm = newCERGMState(terms)
	}
}

func newGraph(n int, mode Mode, opts []Option) *Graph {
	g := &Graph{
		n:         n,
		mode:      mode,
		cacheKind: twopath.Dense,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewDirected constructs an empty directed graph on n nodes.
func NewDirected(n int, opts ...Option) *Graph {
	g := newGraph(n, Directed, opts)
	g.outAdj = make([][]int, n)
	g.inAdj = make([][]int, n)
	g.arcPos = make(map[int64]int)

	g.mix2p = twopath.New(g.cacheKind, n, g.recomputeMix2P)
	g.out2p = twopath.New(g.cacheKind, n, g.recomputeOut2P)
	g.in2p = twopath.New(g.cacheKind, n, g.recomputeIn2P)

	if g.snowball != nil {
		g.snowball.initPrevWaveDegree(n)
	}
	return g
}

// NewUndirected constructs an empty undirected one-mode graph on n nodes.
func NewUndirected(n int, opts ...Option) *Graph {
	g := newGraph(n, Undirected, opts)
	g.neighbors = make([][]int, n)
	g.edgePos = make(map[int64]int)
	g.twoP = twopath.New(g.cacheKind, n, g.recomputeTwoPath)

	if g.snowball != nil {
		g.snowball.initPrevWaveDegree(n)
	}
	return g
}

// NewBipartite constructs an empty bipartite graph on n nodes, with node ids
// [0, nA) on side A and [nA, n) on side B.
func NewBipartite(n, nA int, opts ...Option) *Graph {
	g := newGraph(n, Bipartite, opts)
	g.nA = nA
	g.neighbors = make([][]int, n)
	g.edgePos = make(map[int64]int)
	g.aTwoP = twopath.New(g.cacheKind, n, g.recomputeATwoPath)
	g.bTwoP = twopath.New(g.cacheKind, n, g.recomputeBTwoPath)

	if g.snowball != nil {
		g.snowball.initPrevWaveDegree(n)
	}
	return g
}
