package twopath

// denseCache is a flat row-major N×N table of two-path counts.
//
// Complexity: Get/Inc are O(1); the backing slice is allocated once at
// construction (spec.md §5: "one allocation of N² integers per cache at
// startup").
type denseCache struct {
	n    int
	data []int32
}

func newDenseCache(n int) *denseCache {
	return &denseCache{n: n, data: make([]int32, n*n)}
}

func (d *denseCache) Get(i, j int) int {
	return int(d.data[i*d.n+j])
}

func (d *denseCache) Inc(i, j int, delta int) {
	d.data[i*d.n+j] += int32(delta)
}
