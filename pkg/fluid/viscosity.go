package fluid

// Viscosity returns the current viscosity coefficient.
func (f *Fluid) Viscosity() float64 { return f.viscosity }

// SetViscosity changes the viscosity, clamped at zero, and rebuilds the
// velocity diffusion matrix right away so Update never has to.
func (f *Fluid) SetViscosity(v float64) {
	f.viscosity = max(v, 0)
	f.rebuildVelocityDiffusion()
}

func (f *Fluid) IncreaseViscosity() {
	f.SetViscosity(f.viscosity + f.cfg.ViscosityStep)
}

func (f *Fluid) DecreaseViscosity() {
	f.SetViscosity(f.viscosity - f.cfg.ViscosityStep)
}

func (f *Fluid) rebuildVelocityDiffusion() {
	buildVelocityDiffusion(f.velocityDiffusion, f.grid, f.viscosity*f.h)
}
