package fluid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// VectorField is a view over n*n row-major 2D vectors. Copies share storage.
type VectorField struct {
	n      int
	values []r2.Vec
}

func NewVectorField(n int) VectorField {
	return VectorField{n: n, values: make([]r2.Vec, n*n)}
}

func (v VectorField) N() int { return v.n }

func (v VectorField) Len() int { return len(v.values) }

// Values exposes the backing slice, indexed by i + j*n.
func (v VectorField) Values() []r2.Vec { return v.values }

func (v VectorField) At(i, j int) r2.Vec { return v.values[i+j*v.n] }

func (v VectorField) Set(i, j int, vec r2.Vec) { v.values[i+j*v.n] = vec }

// Value is the checked variant of At.
func (v VectorField) Value(i, j int) (float64, float64, error) {
	if i < 0 || i >= v.n {
		return 0.0, 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", v.n-1)
	}
	if j < 0 || j >= v.n {
		return 0.0, 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", v.n-1)
	}
	vec := v.values[i+j*v.n]
	return vec.X, vec.Y, nil
}

func (v VectorField) Zero() {
	clear(v.values)
}

// ZeroBoundary sets every boundary vector to (0, 0).
func (v VectorField) ZeroBoundary() {
	Grid{N: v.n}.forEachBoundary(func(idx int) { v.values[idx] = r2.Vec{} })
}

// Split copies the x and y components into xs and ys.
func (v VectorField) Split(xs, ys []float64) {
	for k, vec := range v.values {
		xs[k] = vec.X
		ys[k] = vec.Y
	}
}

// Join overwrites the field with the components in xs and ys.
func (v VectorField) Join(xs, ys []float64) {
	for k := range v.values {
		v.values[k] = r2.Vec{X: xs[k], Y: ys[k]}
	}
}
