package fluid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBilinearWeights(t *testing.T) {
	for _, p := range [][2]float64{{0.5, 0.5}, {1.25, 2.75}, {3, 3}, {2.999, 1.001}} {
		_, _, w00, w01, w10, w11 := bilinear(p[0], p[1])
		if sum := w00 + w01 + w10 + w11; math.Abs(sum-1) > 1e-12 {
			t.Errorf("weights at %v sum to %f", p, sum)
		}
	}
	i0, j0, w00, _, _, _ := bilinear(2, 3)
	if i0 != 2 || j0 != 3 || w00 != 1 {
		t.Errorf("grid point (2,3) should take its own sample, got (%d,%d) w=%f", i0, j0, w00)
	}
}

func TestSampleScalarField(t *testing.T) {
	s := NewScalarField(4)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			s.Set(i, j, float64(i)+10*float64(j))
		}
	}
	// bilinear interpolation reproduces linear functions
	if got, want := s.sample(1.5, 2.25), 1.5+22.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("sample = %f, want %f", got, want)
	}
	if got := s.sample(2, 1); got != 12 {
		t.Errorf("sample at a grid point = %f, want 12", got)
	}
}

func TestSampleVectorField(t *testing.T) {
	v := NewVectorField(3)
	v.Set(0, 0, r2.Vec{X: 1, Y: 0})
	v.Set(1, 0, r2.Vec{X: 3, Y: 2})
	got := v.sample(0.5, 0)
	if want := (r2.Vec{X: 2, Y: 1}); got != want {
		t.Errorf("sample = %v, want %v", got, want)
	}
}

func TestBacktraceClamps(t *testing.T) {
	f := newTestFluid(t, 8)
	f.velocity.Set(1, 1, r2.Vec{X: 100, Y: 100})
	f.velocity.Set(6, 6, r2.Vec{X: -100, Y: -100})
	f.velocity.Set(3, 4, r2.Vec{X: 2, Y: -4})

	if x, y := f.backtrace(1, 1); x != 0.5 || y != 0.5 {
		t.Errorf("backtrace(1,1) = (%f,%f), want (0.5,0.5)", x, y)
	}
	if x, y := f.backtrace(6, 6); x != 6.5 || y != 6.5 {
		t.Errorf("backtrace(6,6) = (%f,%f), want (6.5,6.5)", x, y)
	}
	if x, y := f.backtrace(3, 4); math.Abs(x-2.8) > 1e-12 || math.Abs(y-4.4) > 1e-12 {
		t.Errorf("backtrace(3,4) = (%f,%f), want (2.8,4.4)", x, y)
	}
}

func TestAdvectVelocityUniformFlow(t *testing.T) {
	f := newTestFluid(t, 10)
	n := f.N()
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			f.velocity.Set(i, j, r2.Vec{X: 1, Y: 0})
		}
	}
	f.advectVelocity()

	// away from the walls a uniform field is carried unchanged
	if got := f.advected.At(5, 5); math.Abs(got.X-1) > 1e-12 || got.Y != 0 {
		t.Errorf("advected(5,5) = %v, want (1,0)", got)
	}
	// next to the left wall the zero boundary is blended in
	if got := f.advected.At(1, 5); got.X >= 1 {
		t.Errorf("advected(1,5) = %v, expected wall damping", got)
	}
	for k := 0; k < n; k++ {
		if f.advected.At(0, k) != (r2.Vec{}) || f.advected.At(k, n-1) != (r2.Vec{}) {
			t.Fatal("advected boundary should be zero")
		}
	}
}

func TestAdvectDensityAtRestIsIdentity(t *testing.T) {
	f := newTestFluid(t, 6)
	f.diffused.Set(2, 3, 0.7)
	f.diffused.Set(0, 3, 9) // boundary value must be dropped

	f.advectDensity()

	if got := f.DensityAt(2, 3); got != 0.7 {
		t.Errorf("density(2,3) = %f, want 0.7", got)
	}
	if got := f.DensityAt(1, 3); got != 0 {
		t.Errorf("boundary sample leaked into (1,3): %f", got)
	}
}
