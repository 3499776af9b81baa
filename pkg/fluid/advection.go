package fluid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// backtrace follows the velocity at (i, j) one step back in time and clamps
// the result so all four interpolation samples stay on the grid.
func (f *Fluid) backtrace(i, j int) (x, y float64) {
	pos := r2.Add(r2.Vec{X: float64(i), Y: float64(j)}, r2.Scale(-f.h, f.velocity.At(i, j)))
	hi := float64(f.grid.N) - 1.5
	x = min(max(pos.X, 0.5), hi)
	y = min(max(pos.Y, 0.5), hi)
	return x, y
}

// bilinear returns the cell (i0, j0) holding (x, y) and the weights of the
// four samples v00, v01, v10, v11.
func bilinear(x, y float64) (i0, j0 int, w00, w01, w10, w11 float64) {
	fx, fy := math.Floor(x), math.Floor(y)
	s, t := x-fx, y-fy
	i0, j0 = int(fx), int(fy)
	return i0, j0, (1 - s) * (1 - t), (1 - s) * t, s * (1 - t), s * t
}

func (s ScalarField) sample(x, y float64) float64 {
	i0, j0, w00, w01, w10, w11 := bilinear(x, y)
	return w00*s.At(i0, j0) + w01*s.At(i0, j0+1) +
		w10*s.At(i0+1, j0) + w11*s.At(i0+1, j0+1)
}

func (v VectorField) sample(x, y float64) r2.Vec {
	i0, j0, w00, w01, w10, w11 := bilinear(x, y)
	return r2.Add(
		r2.Add(r2.Scale(w00, v.At(i0, j0)), r2.Scale(w01, v.At(i0, j0+1))),
		r2.Add(r2.Scale(w10, v.At(i0+1, j0)), r2.Scale(w11, v.At(i0+1, j0+1))),
	)
}

// advectDensity carries the diffused density along the current velocity
// into f.density. Boundary cells end up at zero.
func (f *Fluid) advectDensity() {
	f.diffused.ZeroBoundary()
	f.density.ZeroBoundary()

	n := f.grid.N
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			x, y := f.backtrace(i, j)
			f.density.Set(i, j, f.diffused.sample(x, y))
		}
	}
}

// advectVelocity carries the velocity along itself into f.advected.
func (f *Fluid) advectVelocity() {
	f.velocity.ZeroBoundary()
	f.advected.ZeroBoundary()

	n := f.grid.N
	for j := 1; j < n-1; j++ {
		for i := 1; i < n-1; i++ {
			x, y := f.backtrace(i, j)
			f.advected.Set(i, j, f.velocity.sample(x, y))
		}
	}
}
