package fluid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// setGradientField fills the interior with the central-difference gradient
// of a sine bump, a smooth field with a single-signed divergence.
func setGradientField(f *Fluid) {
	n := f.N()
	phi := func(i, j int) float64 {
		return math.Sin(math.Pi*float64(i)/float64(n-1)) * math.Sin(math.Pi*float64(j)/float64(n-1))
	}
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			f.velocity.Set(i, j, r2.Vec{
				X: 0.5 * (phi(i+1, j) - phi(i-1, j)),
				Y: 0.5 * (phi(i, j+1) - phi(i, j-1)),
			})
		}
	}
}

func TestProjectionOfZeroFieldIsIdempotent(t *testing.T) {
	f := newTestFluid(t, 12)

	f.project()

	for k := 0; k < f.Size(); k++ {
		if v := f.Velocity().Values()[k]; r2.Norm(v) > 1e-6 {
			t.Errorf("velocity[%d] changed to %v", k, v)
		}
		if p := f.Pressure().Values()[k]; math.Abs(p) > 1e-6 {
			t.Errorf("pressure[%d] = %g, want 0", k, p)
		}
	}
}

func TestProjectionReducesDivergence(t *testing.T) {
	for _, iters := range []int{10, 200} {
		f := newTestFluid(t, 16, func(c *Config) { c.ProjectionIterations = iters })
		setGradientField(f)
		before := divergenceNorm(f)

		f.project()

		after := divergenceNorm(f)
		if after >= before/2 {
			t.Errorf("%d iterations: divergence went from %f to %f", iters, before, after)
		}
	}
}

func TestProjectionZeroesBoundary(t *testing.T) {
	f := newTestFluid(t, 8)
	for k := range f.velocity.Values() {
		f.velocity.Values()[k] = r2.Vec{X: 1, Y: 2}
	}

	f.project()

	n := f.N()
	for k := 0; k < n; k++ {
		for _, v := range []r2.Vec{f.VelocityAt(0, k), f.VelocityAt(n-1, k), f.VelocityAt(k, 0), f.VelocityAt(k, n-1)} {
			if v != (r2.Vec{}) {
				t.Fatalf("boundary velocity %v survived projection", v)
			}
		}
	}
}

func TestMaxDivergenceDropsAfterProjection(t *testing.T) {
	f := newTestFluid(t, 16)
	setGradientField(f)
	before := f.MaxDivergence()
	f.project()
	if after := f.MaxDivergence(); after >= before {
		t.Errorf("max divergence went from %f to %f", before, after)
	}
}
