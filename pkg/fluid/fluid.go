// Package fluid simulates smoke on a square grid with the stable fluids
// method: implicit diffusion, semi-Lagrangian advection and a pressure
// projection that keeps the velocity field close to divergence free.
package fluid

import (
	"stablefluids/pkg/sparse"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fluid owns every field and matrix of one simulation. It is not safe for
// concurrent use: sources must be written between Update calls.
type Fluid struct {
	cfg  Config
	grid Grid
	h    float64

	viscosity float64

	density       ScalarField
	densitySource ScalarField
	diffused      ScalarField // density after diffusion, advection input
	pressure      ScalarField
	divergence    ScalarField

	velocity       VectorField
	velocitySource VectorField
	advected       VectorField

	// component scratch for velocity diffusion
	velX, velY, newVelX, newVelY []float64

	laplacian         *sparse.Matrix
	diffusion         *sparse.Matrix
	velocityDiffusion *sparse.Matrix

	stats Stats
}

// Stats holds the solver results of the most recent update.
type Stats struct {
	DensityDiffusion   sparse.Result
	VelocityDiffusionX sparse.Result
	VelocityDiffusionY sparse.Result
	Projection         sparse.Result
}

func New(cfg Config) (*Fluid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.N
	g := Grid{N: n}
	size := g.Size()

	f := &Fluid{
		cfg:       cfg,
		grid:      g,
		h:         cfg.H,
		viscosity: cfg.Viscosity,

		density:       NewScalarField(n),
		densitySource: NewScalarField(n),
		diffused:      NewScalarField(n),
		pressure:      NewScalarField(n),
		divergence:    NewScalarField(n),

		velocity:       NewVectorField(n),
		velocitySource: NewVectorField(n),
		advected:       NewVectorField(n),

		velX:    make([]float64, size),
		velY:    make([]float64, size),
		newVelX: make([]float64, size),
		newVelY: make([]float64, size),

		laplacian:         sparse.New(size),
		diffusion:         sparse.New(size),
		velocityDiffusion: sparse.New(size),
	}

	buildLaplacian(f.laplacian, g)
	buildDensityDiffusion(f.diffusion, g, cfg.DiffusionRate*cfg.H)
	f.rebuildVelocityDiffusion()

	f.Reset()
	return f, nil
}

// H returns the integration time step.
func (f *Fluid) H() float64 { return f.h }

// N returns the number of grid points per side.
func (f *Fluid) N() int { return f.grid.N }

func (f *Fluid) Size() int { return f.grid.Size() }

func (f *Fluid) Grid() Grid { return f.grid }

func (f *Fluid) Config() Config { return f.cfg }

// Index maps (i, j) to the flat index used by every field.
func (f *Fluid) Index(i, j int) int { return f.grid.Index(i, j) }

// Update advances the simulation by one time step. Density goes first so it
// is carried by the velocity of the previous frame.
func (f *Fluid) Update() {
	f.UpdateDensity()
	f.UpdateVelocity()
}

// LastStats returns the solver results of the latest update.
func (f *Fluid) LastStats() Stats { return f.stats }

func (f *Fluid) Pressure() ScalarField { return f.pressure }

func (f *Fluid) Divergence() ScalarField { return f.divergence }

// VelocityAt returns the velocity of cell (i, j).
func (f *Fluid) VelocityAt(i, j int) r2.Vec { return f.velocity.At(i, j) }

// DensityAt returns the density of cell (i, j).
func (f *Fluid) DensityAt(i, j int) float64 { return f.density.At(i, j) }
