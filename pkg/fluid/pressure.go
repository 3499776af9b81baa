package fluid

// project removes most of the divergence from the velocity field.
//
// The assembled Laplacian is the negative discrete Laplacian, so solving it
// against the divergence yields -q for the usual potential q with ∇²q = ∇·v.
// Subtracting ∇q therefore means adding the gradient of the solution.
func (f *Fluid) project() {
	n := f.grid.N
	v := f.velocity
	f.velocity.ZeroBoundary()

	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			div := 0.5 * (v.At(i+1, j).X - v.At(i-1, j).X +
				v.At(i, j+1).Y - v.At(i, j-1).Y)
			f.divergence.Set(i, j, div)
		}
	}

	f.stats.Projection = f.laplacian.Solve(f.pressure.Values(), f.divergence.Values(),
		f.cfg.Tolerance, f.cfg.ProjectionIterations)

	p := f.pressure
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			vec := v.At(i, j)
			vec.X += 0.5 * (p.At(i+1, j) - p.At(i-1, j))
			vec.Y += 0.5 * (p.At(i, j+1) - p.At(i, j-1))
			v.Set(i, j, vec)
		}
	}
}
