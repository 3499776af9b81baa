package fluid

// diffuseDensity adds the density source and solves D·diffused = density.
// The result lands in f.diffused, which density advection reads from.
func (f *Fluid) diffuseDensity() {
	d := f.density.Values()
	src := f.densitySource.Values()
	for k := range d {
		d[k] += src[k]
	}

	out := f.diffused.Values()
	copy(out, d)
	f.stats.DensityDiffusion = f.diffusion.Solve(out, d, f.cfg.Tolerance, f.cfg.DiffusionIterations)
}

// diffuseVelocity solves the viscous system once per velocity component.
// Nothing happens for zero viscosity: the matrix would be the identity.
func (f *Fluid) diffuseVelocity() {
	if f.viscosity <= 0 {
		return
	}
	f.velocity.Split(f.velX, f.velY)
	copy(f.newVelX, f.velX)
	copy(f.newVelY, f.velY)

	tol, iters := f.cfg.Tolerance, f.cfg.DiffusionIterations
	f.stats.VelocityDiffusionX = f.velocityDiffusion.Solve(f.newVelX, f.velX, tol, iters)
	f.stats.VelocityDiffusionY = f.velocityDiffusion.Solve(f.newVelY, f.velY, tol, iters)

	f.velocity.Join(f.newVelX, f.newVelY)
}
