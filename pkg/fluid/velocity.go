package fluid

import "gonum.org/v1/gonum/spatial/r2"

// UpdateVelocity advects the velocity, adds the velocity source and
// buoyancy, applies viscosity, projects and clears the source.
func (f *Fluid) UpdateVelocity() {
	f.advectVelocity()

	adv := f.advected.Values()
	src := f.velocitySource.Values()
	vel := f.velocity.Values()
	for k := range vel {
		vel[k] = r2.Add(adv[k], src[k])
	}

	f.applyBuoyancy()
	f.diffuseVelocity()
	f.project()
	f.clearVelocitySource()
}

// applyBuoyancy lifts interior cells that hold smoke against gravity.
func (f *Fluid) applyBuoyancy() {
	if f.cfg.Buoyancy == 0 {
		return
	}
	n := f.grid.N
	up := r2.Scale(-f.cfg.Buoyancy, f.cfg.Gravity)
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			d := f.density.At(i, j)
			if d > 0 {
				f.velocity.Set(i, j, r2.Add(f.velocity.At(i, j), r2.Scale(d, up)))
			}
		}
	}
}

// Velocity returns the velocity field. The returned field shares storage
// with the simulation and is only valid to read between updates.
func (f *Fluid) Velocity() VectorField { return f.velocity }
