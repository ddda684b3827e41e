package graph

// DyadCount returns D, the number of admissible dyads, used by the TNT and
// IFD samplers' acceptance-ratio corrections (spec.md §4.3.3).
//
// For directed graphs the spec's literal formula is read as: start from the
// N×N dyad space, remove the N self-dyads unless loops are allowed, then
// halve the remainder if reciprocity is forbidden (each unordered pair then
// admits only one direction). Undirected and bipartite counts are the
// textbook ones.
//
// Snowball-conditional and cERGM graphs substitute their restricted dyad
// counts via their own restrictedDyadCount methods.
func (g *Graph) DyadCount() int {
	if g.snowball != nil {
		return g.snowball.restrictedDyadCount(g)
	}
	if g.cergm != nil {
		return g.cergm.restrictedDyadCount(g)
	}

	switch g.mode {
	case Directed:
		d := g.n * g.n
		if !g.allowLoops {
			d -= g.n
		}
		if g.forbidReciprocity {
			d /= 2
		}
		return d
	case Undirected:
		return g.n * (g.n - 1) / 2
	case Bipartite:
		return g.nA * (g.n - g.nA)
	default:
		return 0
	}
}
