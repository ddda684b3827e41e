package graph

// IsArc reports whether the arc i->j currently exists. Scans whichever of
// outAdj[i]/inAdj[j] is shorter; expected O(avg out-degree).
//
// Complexity: O(min(outdeg(i), indeg(j))).
func (g *Graph) IsArc(i, j int) bool {
	out, in := g.outAdj[i], g.inAdj[j]
	if len(out) <= len(in) {
		return contains(out, j)
	}
	return contains(in, i)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// removeFromSlice swaps target with the last element and truncates,
// returning the mutated slice. Permutes order — see spec.md §9: no
// statistic may depend on adjacency-list order.
func removeFromSlice(xs []int, target int) []int {
	for k, v := range xs {
		if v == target {
			last := len(xs) - 1
			xs[k] = xs[last]
			return xs[:last]
		}
	}
	return xs
}

// InsertArc adds the directed arc i->j. i and j must be distinct unless
// loops are enabled, and the arc must not already exist.
//
// Every flat-list and two-path-cache invariant listed in spec.md §4.1 holds
// immediately after InsertArc returns: IsArc(i,j) is true, AllArcs contains
// (i,j) exactly once, and every two-path cache entry touched by this insert
// equals its brute-force recount.
//
// Complexity: O(outdeg(i) + indeg(i) + outdeg(j) + indeg(j)) for the
// two-path cache update; O(1) amortized for the adjacency and flat-list
// mutation.
func (g *Graph) InsertArc(i, j int) error {
	if g.mode != Directed {
		return ErrWrongMode
	}
	if err := g.checkNode(i); err != nil {
		return err
	}
	if err := g.checkNode(j); err != nil {
		return err
	}
	if i == j && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if g.IsArc(i, j) {
		return ErrArcExists
	}

	g.updateDirectedTwoPaths(i, j, +1)

	g.outAdj[i] = append(g.outAdj[i], j)
	g.inAdj[j] = append(g.inAdj[j], i)

	key := packKey(i, j)
	g.arcPos[key] = len(g.allArcs)
	g.allArcs = append(g.allArcs, Arc{I: i, J: j})

	if g.snowball != nil {
		g.snowball.onArcChange(g, i, j, +1)
	}
	if g.cergm != nil {
		g.cergm.onArcChange(i, j, +1)
	}
	return nil
}

// RemoveArc deletes the directed arc i->j if present.
//
// Complexity: same bound as InsertArc.
func (g *Graph) RemoveArc(i, j int) error {
	if g.mode != Directed {
		return ErrWrongMode
	}
	if !g.IsArc(i, j) {
		return ErrArcNotFound
	}

	g.updateDirectedTwoPaths(i, j, -1)

	g.outAdj[i] = removeFromSlice(g.outAdj[i], j)
	g.inAdj[j] = removeFromSlice(g.inAdj[j], i)

	key := packKey(i, j)
	idx := g.arcPos[key]
	last := len(g.allArcs) - 1
	moved := g.allArcs[last]
	g.allArcs[idx] = moved
	g.allArcs = g.allArcs[:last]
	delete(g.arcPos, key)
	if idx != last {
		g.arcPos[packKey(moved.I, moved.J)] = idx
	}

	if g.snowball != nil {
		g.snowball.onArcChange(g, i, j, -1)
	}
	if g.cergm != nil {
		g.cergm.onArcChange(i, j, -1)
	}
	return nil
}

// updateDirectedTwoPaths applies the insert/remove two-path update rules of
// spec.md §4.1 for arc i->j, with sign=+1 on insert and sign=-1 on remove.
// Because every walked neighbour is required to differ from both i and j,
// these scans are valid whether run before or after the adjacency mutation
// itself — the new/removed arc never participates in its own two-path
// count.
func (g *Graph) updateDirectedTwoPaths(i, j, sign int) {
	for _, w := range g.inAdj[i] { // w -> i
		if w == i || w == j {
			continue
		}
		g.mix2p.Inc(w, j, sign)
	}
	for _, v := range g.outAdj[j] { // j -> v
		if v == i || v == j {
			continue
		}
		g.mix2p.Inc(i, v, sign)
	}
	for _, v := range g.outAdj[i] { // i -> v
		if v == i || v == j {
			continue
		}
		g.out2p.Inc(j, v, sign)
		g.out2p.Inc(v, j, sign)
	}
	for _, v := range g.inAdj[j] { // v -> j
		if v == i || v == j {
			continue
		}
		g.in2p.Inc(v, i, sign)
		g.in2p.Inc(i, v, sign)
	}
}

func (g *Graph) recomputeMix2P(i, j int) int {
	count := 0
	for _, v := range g.outAdj[i] {
		if v != j && g.IsArc(v, j) {
			count++
		}
	}
	return count
}

func (g *Graph) recomputeOut2P(i, j int) int {
	count := 0
	for _, v := range g.inAdj[i] {
		if v != j && g.IsArc(v, j) {
			count++
		}
	}
	return count
}

func (g *Graph) recomputeIn2P(i, j int) int {
	count := 0
	for _, v := range g.outAdj[i] {
		if v != j && g.IsArc(j, v) {
			count++
		}
	}
	return count
}

// Mix2P returns mix2p(i,j) = |{v : i->v and v->j}|.
func (g *Graph) Mix2P(i, j int) int { return g.mix2p.Get(i, j) }

// Out2P returns out2p(i,j) = |{v : v->i and v->j}| (shared in-neighbours).
func (g *Graph) Out2P(i, j int) int { return g.out2p.Get(i, j) }

// In2P returns in2p(i,j) = |{v : i->v and j->v}| (shared out-neighbours).
func (g *Graph) In2P(i, j int) int { return g.in2p.Get(i, j) }

// OutDegree returns out-degree of v.
func (g *Graph) OutDegree(v int) int { return len(g.outAdj[v]) }

// InDegree returns in-degree of v.
func (g *Graph) InDegree(v int) int { return len(g.inAdj[v]) }

// OutNeighbors returns the (order-unstable) slice of out-neighbours of v.
// Callers must not mutate the returned slice.
func (g *Graph) OutNeighbors(v int) []int { return g.outAdj[v] }

// InNeighbors returns the (order-unstable) slice of in-neighbours of v.
// Callers must not mutate the returned slice.
func (g *Graph) InNeighbors(v int) []int { return g.inAdj[v] }

// ArcCount returns the number of arcs currently stored.
func (g *Graph) ArcCount() int { return len(g.allArcs) }

// AllArcs returns the flat arc list. Order is not meaningful across
// mutations (RemoveArc swaps with the last element); callers needing O(1)
// uniform-random arc selection should index directly into the slice
// returned here rather than copying it.
func (g *Graph) AllArcs() []Arc { return g.allArcs }

// ArcAt returns the arc stored at flat-list position idx, for uniform
// random selection by the flat-list-driven samplers (IFD/TNT).
func (g *Graph) ArcAt(idx int) Arc { return g.allArcs[idx] }
