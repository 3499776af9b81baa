package fluid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	ErrGridTooSmall        = errors.New("grid must have at least 3 points per side")
	ErrInvalidTimeStep     = errors.New("time step must be positive")
	ErrNegativeCoefficient = errors.New("coefficient must not be negative")
	ErrInvalidSolver       = errors.New("invalid solver settings")
)

// Config holds the construction-time parameters of a Fluid.
type Config struct {
	N int     // grid points per side
	H float64 // integration time step

	DiffusionRate float64 // density diffusion coefficient
	Viscosity     float64 // initial viscosity
	ViscosityStep float64 // increment used by Increase/DecreaseViscosity

	// Buoyancy pushes smoke against Gravity with a force proportional to
	// the local density. Gravity is a direction; (0, 1) points down the
	// screen.
	Buoyancy float64
	Gravity  r2.Vec

	Tolerance            float64
	DiffusionIterations  int
	ProjectionIterations int
}

// DefaultConfig returns the 60x60 setup the viewer starts with.
func DefaultConfig() Config {
	return Config{
		N:                    60,
		H:                    0.1,
		DiffusionRate:        0.3,
		Viscosity:            0.1,
		ViscosityStep:        0.01,
		Buoyancy:             0.1,
		Gravity:              r2.Vec{X: 0, Y: 1},
		Tolerance:            1e-8,
		DiffusionIterations:  30,
		ProjectionIterations: 10,
	}
}

func (c Config) Validate() error {
	if c.N < 3 {
		return fmt.Errorf("n = %d: %w", c.N, ErrGridTooSmall)
	}
	if !(c.H > 0) {
		return fmt.Errorf("h = %g: %w", c.H, ErrInvalidTimeStep)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"diffusion rate", c.DiffusionRate},
		{"viscosity", c.Viscosity},
		{"viscosity step", c.ViscosityStep},
		{"buoyancy", c.Buoyancy},
	} {
		if p.value < 0 {
			return fmt.Errorf("%s = %g: %w", p.name, p.value, ErrNegativeCoefficient)
		}
	}
	if !(c.Tolerance > 0) || c.DiffusionIterations < 1 || c.ProjectionIterations < 1 {
		return fmt.Errorf("tolerance %g, iterations %d/%d: %w",
			c.Tolerance, c.DiffusionIterations, c.ProjectionIterations, ErrInvalidSolver)
	}
	return nil
}
