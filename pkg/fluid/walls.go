package fluid

import "gonum.org/v1/gonum/spatial/r2"

// DensitySource returns the density impulse buffer consumed by the next
// Update. Writes through the returned view are visible to the simulation.
func (f *Fluid) DensitySource() ScalarField { return f.densitySource }

// VelocitySource returns the velocity impulse buffer consumed by the next
// Update.
func (f *Fluid) VelocitySource() VectorField { return f.velocitySource }

// InjectDensity sets the density source of cell (i, j). Indices are not
// checked; callers clamp them to the grid.
func (f *Fluid) InjectDensity(i, j int, amount float64) {
	f.densitySource.Set(i, j, amount)
}

// InjectVelocity sets the velocity source of cell (i, j).
func (f *Fluid) InjectVelocity(i, j int, v r2.Vec) {
	f.velocitySource.Set(i, j, v)
}

func (f *Fluid) clearDensitySource() {
	f.densitySource.Fill(0)
}

func (f *Fluid) clearVelocitySource() {
	f.velocitySource.Zero()
}

// Reset zeroes every dynamic field. Matrices, grid size and viscosity are
// left alone.
func (f *Fluid) Reset() {
	f.density.Fill(0)
	f.densitySource.Fill(0)
	f.diffused.Fill(0)
	f.pressure.Fill(0)
	f.divergence.Fill(0)
	f.velocity.Zero()
	f.velocitySource.Zero()
	f.advected.Zero()
}
