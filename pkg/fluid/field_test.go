package fluid

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestScalarFieldValue(t *testing.T) {
	s := NewScalarField(3)
	s.Set(2, 1, 4.5)
	v, err := s.Value(2, 1)
	if err != nil || v != 4.5 {
		t.Errorf("Value(2,1) = %f, %v; want 4.5, nil", v, err)
	}
	if s.Values()[2+1*3] != 4.5 {
		t.Error("index should be i + j*n")
	}
	if _, err := s.Value(3, 0); err == nil {
		t.Error("expected error for x index 3")
	}
	if _, err := s.Value(0, -1); err == nil {
		t.Error("expected error for y index -1")
	}
}

func TestScalarFieldZeroBoundary(t *testing.T) {
	s := NewScalarField(4)
	s.Fill(1)
	s.ZeroBoundary()
	if got := s.Sum(); got != 4 {
		t.Errorf("expected only the 2x2 interior to remain, sum = %f", got)
	}
	lo, hi := s.MinMax()
	if lo != 0 || hi != 1 {
		t.Errorf("MinMax = %f, %f; want 0, 1", lo, hi)
	}
}

func TestVectorFieldSplitJoin(t *testing.T) {
	v := NewVectorField(3)
	v.Set(1, 2, r2.Vec{X: 3, Y: -1})
	xs := make([]float64, v.Len())
	ys := make([]float64, v.Len())
	v.Split(xs, ys)
	if xs[7] != 3 || ys[7] != -1 {
		t.Errorf("split components = %f, %f", xs[7], ys[7])
	}
	xs[0] = 9
	v.Join(xs, ys)
	if got := v.At(0, 0); got != (r2.Vec{X: 9}) {
		t.Errorf("joined (0,0) = %v", got)
	}
	if x, y, err := v.Value(1, 2); err != nil || x != 3 || y != -1 {
		t.Errorf("Value(1,2) = %f, %f, %v", x, y, err)
	}
	if _, _, err := v.Value(-1, 0); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestViewsShareStorage(t *testing.T) {
	f := newTestFluid(t, 5)
	src := f.DensitySource()
	src.Set(2, 2, 3)
	if f.DensitySource().At(2, 2) != 3 {
		t.Error("writes through a source view must reach the simulation")
	}
}
