package fluid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ScalarField is a view over n*n row-major values. Copies of a ScalarField
// share the same storage.
type ScalarField struct {
	n      int
	values []float64
}

func NewScalarField(n int) ScalarField {
	return ScalarField{n: n, values: make([]float64, n*n)}
}

func (s ScalarField) N() int { return s.n }

func (s ScalarField) Len() int { return len(s.values) }

// Values exposes the backing slice, indexed by i + j*n.
func (s ScalarField) Values() []float64 { return s.values }

// At returns the value at (i, j) without bounds checks beyond Go's own.
func (s ScalarField) At(i, j int) float64 { return s.values[i+j*s.n] }

func (s ScalarField) Set(i, j int, v float64) { s.values[i+j*s.n] = v }

// Value is the checked variant of At.
func (s ScalarField) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", s.n-1)
	}
	if j < 0 || j >= s.n {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", s.n-1)
	}
	return s.values[i+j*s.n], nil
}

func (s ScalarField) Fill(v float64) {
	for i := range s.values {
		s.values[i] = v
	}
}

// ZeroBoundary sets every boundary cell to 0.
func (s ScalarField) ZeroBoundary() {
	Grid{N: s.n}.forEachBoundary(func(idx int) { s.values[idx] = 0 })
}

func (s ScalarField) Sum() float64 { return floats.Sum(s.values) }

// MinMax returns the smallest and largest value in the field.
func (s ScalarField) MinMax() (float64, float64) {
	if len(s.values) == 0 {
		return 0, 0
	}
	return floats.Min(s.values), floats.Max(s.values)
}
