package sparse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Result describes the outcome of a Solve call.
type Result struct {
	Iterations int
	Residual   float64 // 2-norm of b - A·x for the returned x
	Converged  bool
}

// Solve approximates A·x = b in place, using the contents of x as the
// initial guess. Iteration stops once the residual norm drops to
// tolerance·max(1, ‖b‖) or after maxIterations steps. Hitting the cap is not
// an error: x holds the best iterate found and Result says so.
//
// Symmetric matrices are solved with conjugate gradient, everything else
// with BiCGSTAB.
func (m *Matrix) Solve(x, b []float64, tolerance float64, maxIterations int) Result {
	m.checkVector("x", x)
	m.checkVector("b", b)
	m.compile()
	if m.size == 0 {
		return Result{Converged: true}
	}

	limit := tolerance * math.Max(1, floats.Norm(b, 2))
	if m.IsSymmetric() {
		return m.conjugateGradient(x, b, limit, maxIterations)
	}
	return m.biCGStab(x, b, limit, maxIterations)
}

// residual stores b - A·x in r and returns its norm.
func (m *Matrix) residual(r, x, b []float64) float64 {
	m.mulVec(r, x)
	floats.SubTo(r, b, r)
	return floats.Norm(r, 2)
}

func (m *Matrix) conjugateGradient(x, b []float64, limit float64, maxIterations int) Result {
	r, p, ap := m.r, m.p, m.v

	norm := m.residual(r, x, b)
	if norm <= limit {
		return Result{Residual: norm, Converged: true}
	}
	copy(p, r)
	rr := floats.Dot(r, r)

	res := Result{Residual: norm}
	for res.Iterations < maxIterations {
		m.mulVec(ap, p)
		pAp := floats.Dot(p, ap)
		if pAp == 0 {
			break
		}
		alpha := rr / pAp
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		res.Iterations++

		rrNext := floats.Dot(r, r)
		res.Residual = math.Sqrt(rrNext)
		if res.Residual <= limit {
			res.Converged = true
			break
		}
		beta := rrNext / rr
		rr = rrNext
		// p = r + beta·p
		floats.Scale(beta, p)
		floats.Add(p, r)
	}
	return res
}

func (m *Matrix) biCGStab(x, b []float64, limit float64, maxIterations int) Result {
	r, rHat, p, v, s, t := m.r, m.rHat, m.p, m.v, m.s, m.t

	norm := m.residual(r, x, b)
	if norm <= limit {
		return Result{Residual: norm, Converged: true}
	}
	copy(rHat, r)
	clear(p)
	clear(v)
	rho, alpha, omega := 1.0, 1.0, 1.0

	res := Result{Residual: norm}
	for res.Iterations < maxIterations {
		rhoNext := floats.Dot(rHat, r)
		if rhoNext == 0 {
			break
		}
		beta := (rhoNext / rho) * (alpha / omega)
		// p = r + beta·(p - omega·v)
		floats.AddScaled(p, -omega, v)
		floats.Scale(beta, p)
		floats.Add(p, r)

		m.mulVec(v, p)
		d := floats.Dot(rHat, v)
		if d == 0 {
			break
		}
		alpha = rhoNext / d
		floats.AddScaledTo(s, r, -alpha, v)
		res.Iterations++

		if sNorm := floats.Norm(s, 2); sNorm <= limit {
			floats.AddScaled(x, alpha, p)
			copy(r, s)
			res.Residual = sNorm
			res.Converged = true
			break
		}

		m.mulVec(t, s)
		tt := floats.Dot(t, t)
		if tt == 0 {
			floats.AddScaled(x, alpha, p)
			copy(r, s)
			res.Residual = floats.Norm(r, 2)
			break
		}
		omega = floats.Dot(t, s) / tt
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(x, omega, s)
		floats.AddScaledTo(r, s, -omega, t)
		res.Residual = floats.Norm(r, 2)
		if res.Residual <= limit {
			res.Converged = true
			break
		}
		if omega == 0 {
			break
		}
		rho = rhoNext
	}
	return res
}
