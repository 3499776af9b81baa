package fluid

// Grid describes the square n x n lattice shared by every field. Cell (i, j)
// lives at index i + j*n.
type Grid struct {
	N int
}

func (g Grid) Size() int { return g.N * g.N }

// Index does no bounds checking; callers clamp (i, j) to [0, n).
func (g Grid) Index(i, j int) int { return i + j*g.N }

// IsBoundary reports whether (i, j) lies on the outer ring of cells.
func (g Grid) IsBoundary(i, j int) bool {
	return i == 0 || j == 0 || i == g.N-1 || j == g.N-1
}

// interior reports whether a single coordinate lies strictly inside (0, n-1).
func (g Grid) interior(k int) bool {
	return k > 0 && k < g.N-1
}

// forEachBoundary calls fn with the index of every boundary cell. Corners
// are visited twice.
func (g Grid) forEachBoundary(fn func(idx int)) {
	n := g.N
	for k := 0; k < n; k++ {
		fn(g.Index(0, k))
		fn(g.Index(n-1, k))
		fn(g.Index(k, 0))
		fn(g.Index(k, n-1))
	}
}
