package graph

// cergmState tracks which nodes hold the latest ("max") time period and
// maintains all_maxtermsender_arcs: the flat list of arcs whose sender is
// in that latest term (spec.md §3/§4.3.4). Citation-ERGM estimation freezes
// every other arc — only these are ever toggled.
type cergmState struct {
	term    []int
	maxTerm int

	maxtermArcs []Arc
	arcPos      map[int64]int
}

func newCERGMState(terms []int) *cergmState {
	t := make([]int, len(terms))
	copy(t, terms)
	max := 0
	for _, v := range t {
		if v > max {
			max = v
		}
	}
	return &cergmState{
		term:    t,
		maxTerm: max,
		arcPos:  make(map[int64]int),
	}
}

func (c *cergmState) onArcChange(i, j, sign int) {
	if c.term[i] != c.maxTerm {
		return
	}
	key := packKey(i, j)
	if sign > 0 {
		c.arcPos[key] = len(c.maxtermArcs)
		c.maxtermArcs = append(c.maxtermArcs, Arc{I: i, J: j})
		return
	}
	idx, ok := c.arcPos[key]
	if !ok {
		return
	}
	last := len(c.maxtermArcs) - 1
	moved := c.maxtermArcs[last]
	c.maxtermArcs[idx] = moved
	c.maxtermArcs = c.maxtermArcs[:last]
	delete(c.arcPos, key)
	if idx != last {
		c.arcPos[packKey(moved.I, moved.J)] = idx
	}
}

// restrictedDyadCount counts dyads with a mode-A... here, a max-term
// sender and any other non-self node, per spec.md §4.3.3.
func (c *cergmState) restrictedDyadCount(g *Graph) int {
	senders := c.MaxTermNodes(g)
	d := len(senders) * (g.n - 1)
	if g.forbidReciprocity {
		d /= 2
	}
	return d
}

// Term returns v's time period.
func (g *Graph) Term(v int) int { return g.cergm.term[v] }

// MaxTerm returns the latest time period present in the graph.
func (g *Graph) MaxTerm() int { return g.cergm.maxTerm }

// MaxTermNodes returns every node whose term equals MaxTerm.
func (c *cergmState) MaxTermNodes(g *Graph) []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if c.term[v] == c.maxTerm {
			out = append(out, v)
		}
	}
	return out
}

// MaxTermNodes returns every node with term == max_term.
func (g *Graph) MaxTermNodes() []int { return g.cergm.MaxTermNodes(g) }

// MaxTermSenderArcCount returns the length of all_maxtermsender_arcs.
func (g *Graph) MaxTermSenderArcCount() int { return len(g.cergm.maxtermArcs) }

// MaxTermSenderArcAt returns the arc at position idx within
// all_maxtermsender_arcs, for uniform-random delete proposals in cERGM
// mode (spec.md §4.3.4).
func (g *Graph) MaxTermSenderArcAt(idx int) Arc { return g.cergm.maxtermArcs[idx] }
