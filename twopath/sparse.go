package twopath

// sparseCache stores only the (i,j) pairs whose count is non-zero, keyed
// by a packed int64; an entry is deleted when its count returns to zero. Suited to graphs where most pairs share no
// two-path, trading O(1) dense lookups for O(entries) memory.
type sparseCache struct {
	entries map[int64]int32
}

func newSparseCache() *sparseCache {
	return &sparseCache{entries: make(map[int64]int32)}
}

func packKey(i, j int) int64 {
	return int64(i)<<32 | int64(uint32(j))
}

func (s *sparseCache) Get(i, j int) int {
	return int(s.entries[packKey(i, j)])
}

func (s *sparseCache) Inc(i, j int, delta int) {
	key := packKey(i, j)
	v := s.entries[key] + int32(delta)
	if v == 0 {
		delete(s.entries, key)
		return
	}
	s.entries[key] = v
}
