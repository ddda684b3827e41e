package graph

// IsEdge reports whether the undirected/bipartite dyad {i,j} currently
// exists. Scans whichever neighbour list is shorter.
//
// Complexity: O(min(deg(i), deg(j))).
func (g *Graph) IsEdge(i, j int) bool {
	ni, nj := g.neighbors[i], g.neighbors[j]
	if len(ni) <= len(nj) {
		return contains(ni, j)
	}
	return contains(nj, i)
}

// InsertEdge adds the undirected edge {i,j} (one-mode) or the bipartite
// edge i-j (must cross modes). i and j must be distinct and the edge must
// not already exist.
//
// Complexity: O(deg(i) + deg(j)) for the two-path cache update; O(1)
// amortized for the adjacency and flat-list mutation.
func (g *Graph) InsertEdge(i, j int) error {
	if g.mode != Undirected && g.mode != Bipartite {
		return ErrWrongMode
	}
	if err := g.checkNode(i); err != nil {
		return err
	}
	if err := g.checkNode(j); err != nil {
		return err
	}
	if i == j {
		return ErrLoopNotAllowed
	}
	if g.mode == Bipartite && g.ModeOf(i) == g.ModeOf(j) {
		return ErrIntraModeEdge
	}
	if g.IsEdge(i, j) {
		return ErrEdgeExists
	}

	g.updateUndirectedTwoPaths(i, j, +1)

	g.neighbors[i] = append(g.neighbors[i], j)
	g.neighbors[j] = append(g.neighbors[j], i)

	ci, cj := canonicalUndirected(i, j)
	key := packKey(ci, cj)
	g.edgePos[key] = len(g.allEdges)
	g.allEdges = append(g.allEdges, Edge{I: ci, J: cj})

	if g.snowball != nil {
		g.snowball.onEdgeChange(g, i, j, +1)
	}
	return nil
}

// RemoveEdge deletes the undirected/bipartite edge {i,j} if present.
//
// Complexity: same bound as InsertEdge.
func (g *Graph) RemoveEdge(i, j int) error {
	if g.mode != Undirected && g.mode != Bipartite {
		return ErrWrongMode
	}
	if !g.IsEdge(i, j) {
		return ErrEdgeNotFound
	}

	g.updateUndirectedTwoPaths(i, j, -1)

	g.neighbors[i] = removeFromSlice(g.neighbors[i], j)
	g.neighbors[j] = removeFromSlice(g.neighbors[j], i)

	ci, cj := canonicalUndirected(i, j)
	key := packKey(ci, cj)
	idx := g.edgePos[key]
	last := len(g.allEdges) - 1
	moved := g.allEdges[last]
	g.allEdges[idx] = moved
	g.allEdges = g.allEdges[:last]
	delete(g.edgePos, key)
	if idx != last {
		mi, mj := canonicalUndirected(moved.I, moved.J)
		g.edgePos[packKey(mi, mj)] = idx
	}

	if g.snowball != nil {
		g.snowball.onEdgeChange(g, i, j, -1)
	}
	return nil
}

// updateUndirectedTwoPaths applies the insert/remove two-path update rules
// of spec.md §4.1 for edge {i,j}. One-mode graphs update the single twoP
// table; bipartite graphs route each walked neighbour's contribution to
// the A-side or B-side table according to which side the neighbour falls
// on (spec.md §4.1: "updates the A-side or B-side table by the mode of the
// walking endpoint").
func (g *Graph) updateUndirectedTwoPaths(i, j, sign int) {
	for _, v := range g.neighbors[i] {
		if v == i || v == j {
			continue
		}
		g.incTwoPath(v, j, sign)
		g.incTwoPath(j, v, sign)
	}
	for _, v := range g.neighbors[j] {
		if v == i || v == j {
			continue
		}
		g.incTwoPath(v, i, sign)
		g.incTwoPath(i, v, sign)
	}
}

func (g *Graph) incTwoPath(a, b, sign int) {
	if g.mode == Undirected {
		g.twoP.Inc(a, b, sign)
		return
	}
	// Bipartite: a and b are always on the same side here, since a is a
	// neighbour of a node on the opposite side from a-and-b's common
	// endpoint. Route to whichever side table they belong to.
	if g.ModeOf(a) == SideA {
		g.aTwoP.Inc(a, b, sign)
	} else {
		g.bTwoP.Inc(a, b, sign)
	}
}

func (g *Graph) recomputeTwoPath(i, j int) int {
	count := 0
	for _, v := range g.neighbors[i] {
		if v != j && g.IsEdge(v, j) {
			count++
		}
	}
	return count
}

func (g *Graph) recomputeATwoPath(i, j int) int {
	return g.recomputeTwoPath(i, j)
}

func (g *Graph) recomputeBTwoPath(i, j int) int {
	return g.recomputeTwoPath(i, j)
}

// TwoPath returns 2p(i,j), the number of common neighbours of i and j in a
// one-mode undirected graph.
func (g *Graph) TwoPath(i, j int) int { return g.twoP.Get(i, j) }

// ATwoPath returns A2p(i,j) for i,j both on bipartite side A: the number of
// common mode-B neighbours.
func (g *Graph) ATwoPath(i, j int) int { return g.aTwoP.Get(i, j) }

// BTwoPath returns B2p(i,j) for i,j both on bipartite side B: the number of
// common mode-A neighbours.
func (g *Graph) BTwoPath(i, j int) int { return g.bTwoP.Get(i, j) }

// Degree returns the number of neighbours of v (undirected/bipartite).
func (g *Graph) Degree(v int) int { return len(g.neighbors[v]) }

// Neighbors returns the (order-unstable) slice of neighbours of v. Callers
// must not mutate the returned slice.
func (g *Graph) Neighbors(v int) []int { return g.neighbors[v] }

// EdgeCount returns the number of edges currently stored.
func (g *Graph) EdgeCount() int { return len(g.allEdges) }

// AllEdges returns the flat edge list; same order-instability caveat as
// AllArcs.
func (g *Graph) AllEdges() []Edge { return g.allEdges }

// EdgeAt returns the edge stored at flat-list position idx.
func (g *Graph) EdgeAt(idx int) Edge { return g.allEdges[idx] }
