package fluid

import "stablefluids/pkg/sparse"

// neighbors calls fn with the index of each 4-neighbor of (i, j) whose
// shifted coordinate lies strictly inside (0, n-1).
func (g Grid) neighbors(i, j int, fn func(idx int)) {
	idx := g.Index(i, j)
	if g.interior(i - 1) {
		fn(idx - 1)
	}
	if g.interior(i + 1) {
		fn(idx + 1)
	}
	if g.interior(j - 1) {
		fn(idx - g.N)
	}
	if g.interior(j + 1) {
		fn(idx + g.N)
	}
}

// buildLaplacian fills m with the negated 5-point Laplacian on interior cells
// and identity rows on the boundary.
func buildLaplacian(m *sparse.Matrix, g Grid) {
	m.ResetDimensions(g.Size())
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.N; i++ {
			idx := g.Index(i, j)
			if g.IsBoundary(i, j) {
				m.Set(idx, idx, 1)
				continue
			}
			g.neighbors(i, j, func(nb int) { m.Set(idx, nb, -1) })
			m.Set(idx, idx, 4)
		}
	}
}

// buildDensityDiffusion fills m with I + k·L where the diagonal only counts
// neighbors that were actually set. Boundary rows follow the same rule, so
// they couple to the interior one way and the matrix is not symmetric.
func buildDensityDiffusion(m *sparse.Matrix, g Grid, k float64) {
	m.ResetDimensions(g.Size())
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.N; i++ {
			idx := g.Index(i, j)
			count := 0
			g.neighbors(i, j, func(nb int) {
				m.Set(idx, nb, -k)
				count++
			})
			m.Set(idx, idx, 1+float64(count)*k)
		}
	}
}

// buildVelocityDiffusion fills m with I + k·L on interior cells and identity
// rows on the boundary. For k <= 0 the whole matrix is the identity.
func buildVelocityDiffusion(m *sparse.Matrix, g Grid, k float64) {
	m.ResetDimensions(g.Size())
	if k <= 0 {
		for idx := 0; idx < g.Size(); idx++ {
			m.Set(idx, idx, 1)
		}
		return
	}
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.N; i++ {
			idx := g.Index(i, j)
			if g.IsBoundary(i, j) {
				m.Set(idx, idx, 1)
				continue
			}
			count := 0
			g.neighbors(i, j, func(nb int) {
				m.Set(idx, nb, -k)
				count++
			})
			m.Set(idx, idx, 1+float64(count)*k)
		}
	}
}
