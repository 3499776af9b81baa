package fluid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// TotalDensity returns the sum of the density over the whole grid.
func (f *Fluid) TotalDensity() float64 {
	return f.density.Sum()
}

// MaxDivergence returns the largest absolute central-difference divergence
// of the current velocity over the interior cells.
func (f *Fluid) MaxDivergence() float64 {
	n := f.grid.N
	v := f.velocity
	maxDiv := 0.0
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			div := 0.5 * (v.At(i+1, j).X - v.At(i-1, j).X +
				v.At(i, j+1).Y - v.At(i, j-1).Y)
			maxDiv = max(maxDiv, math.Abs(div))
		}
	}
	return maxDiv
}

// VelocityMagnitude computes |v| per cell.
func (f *Fluid) VelocityMagnitude() ScalarField {
	out := NewScalarField(f.grid.N)
	vals := out.Values()
	for k, vec := range f.velocity.Values() {
		vals[k] = r2.Norm(vec)
	}
	return out
}

// Vorticity computes the curl dv/dx - du/dy with central differences on
// the interior. Boundary cells are left at zero.
func (f *Fluid) Vorticity() ScalarField {
	n := f.grid.N
	v := f.velocity
	out := NewScalarField(n)
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			dvdx := 0.5 * (v.At(i+1, j).Y - v.At(i-1, j).Y)
			dudy := 0.5 * (v.At(i, j+1).X - v.At(i, j-1).X)
			out.Set(i, j, dvdx-dudy)
		}
	}
	return out
}
