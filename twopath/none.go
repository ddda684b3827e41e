package twopath

// noneCache performs no incremental maintenance; every Get re-scans the
// owning graph's adjacency through the RecomputeFunc supplied at
// construction. Appropriate when memory is scarcer than CPU, or for tests
// that want a trivially-correct oracle to compare a Dense/Sparse cache
// against (spec.md §8, invariant 2).
type noneCache struct {
	recompute RecomputeFunc
}

func (n noneCache) Get(i, j int) int {
	return n.recompute(i, j)
}

func (n noneCache) Inc(i, j int, delta int) {
	// Nothing to maintain: Get always recomputes from scratch.
}
