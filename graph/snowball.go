package graph

// snowballState tracks the per-node zone assigned by a snowball sample and
// the prev_wave_degree bookkeeping spec.md §3/§4.3.4 requires for
// conditional estimation.
type snowballState struct {
	zone           []int
	maxZone        int
	prevWaveDegree []int
}

func newSnowballState(zones []int, maxZone int) *snowballState {
	z := make([]int, len(zones))
	copy(z, zones)
	return &snowballState{zone: z, maxZone: maxZone}
}

func (s *snowballState) initPrevWaveDegree(n int) {
	s.prevWaveDegree = make([]int, n)
}

// isPrevWaveNeighbor reports whether u sits exactly one wave closer to the
// seed than v, i.e. the relation prev_wave_degree counts.
func (s *snowballState) isPrevWaveNeighbor(u, v int) bool {
	return s.zone[u] == s.zone[v]-1
}

// onArcChange and onEdgeChange both update prev_wave_degree symmetrically:
// spec.md §4.3.4 notes reciprocity direction is ignored when checking
// zones, so a directed arc contributes to prev_wave_degree exactly as an
// undirected edge would.
func (s *snowballState) onArcChange(g *Graph, i, j, sign int) {
	s.onPairChange(i, j, sign)
}

func (s *snowballState) onEdgeChange(g *Graph, i, j, sign int) {
	s.onPairChange(i, j, sign)
}

func (s *snowballState) onPairChange(i, j, sign int) {
	if s.isPrevWaveNeighbor(j, i) {
		s.prevWaveDegree[i] += sign
	}
	if s.isPrevWaveNeighbor(i, j) {
		s.prevWaveDegree[j] += sign
	}
}

// Zone returns the wave at which v was discovered (0 = seed). Only
// meaningful when IsSnowballConditional is true.
func (g *Graph) Zone(v int) int { return g.snowball.zone[v] }

// MaxZone returns the outermost wave of the snowball sample.
func (g *Graph) MaxZone() int { return g.snowball.maxZone }

// PrevWaveDegree returns prev_wave_degree[v]: the number of v's neighbours
// one wave closer to the seed than v.
func (g *Graph) PrevWaveDegree(v int) int { return g.snowball.prevWaveDegree[v] }

// IsInner reports whether v has zone < max_zone (spec.md §3 inner_nodes).
func (g *Graph) IsInner(v int) bool { return g.snowball.zone[v] < g.snowball.maxZone }

// InnerNodes returns every node with zone < max_zone.
func (g *Graph) InnerNodes() []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.IsInner(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsZoneAdmissible reports whether the dyad (i,j) may be toggled under
// snowball-conditional restrictions: both endpoints inner, and their zones
// differ by at most 1 (spec.md §4.3.4).
func (g *Graph) IsZoneAdmissible(i, j int) bool {
	if !g.IsInner(i) || !g.IsInner(j) {
		return false
	}
	diff := g.snowball.zone[i] - g.snowball.zone[j]
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// restrictedDyadCount counts dyads among inner nodes within one zone of
// each other, matching the space IsZoneAdmissible admits.
func (s *snowballState) restrictedDyadCount(g *Graph) int {
	count := 0
	switch g.mode {
	case Directed:
		for i := 0; i < g.n; i++ {
			for j := 0; j < g.n; j++ {
				if i == j && !g.allowLoops {
					continue
				}
				if g.IsZoneAdmissible(i, j) {
					count++
				}
			}
		}
		if g.forbidReciprocity {
			count /= 2
		}
	default: // Undirected, Bipartite
		for i := 0; i < g.n; i++ {
			for j := i + 1; j < g.n; j++ {
				if g.mode == Bipartite && g.ModeOf(i) == g.ModeOf(j) {
					continue
				}
				if g.IsZoneAdmissible(i, j) {
					count++
				}
			}
		}
	}
	return count
}
