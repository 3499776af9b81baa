package fluid

// UpdateDensity adds the density source, diffuses, advects along the
// current velocity and clears the source.
func (f *Fluid) UpdateDensity() {
	f.diffuseDensity()
	f.advectDensity()
	f.clearDensitySource()
}

// Density returns the smoke density. The returned field shares storage with
// the simulation and is only valid to read between updates.
func (f *Fluid) Density() ScalarField { return f.density }
