// Package sparse implements a square sparse matrix with iterative solvers for
// the linear systems that appear in grid based fluid solvers.
package sparse

import (
	"fmt"
	"maps"
	"slices"
)

// Matrix is a square sparse matrix. Entries are kept in one map per row,
// keyed by column. Before a solve the rows are compiled into a compressed
// row layout so the hot loop never touches a map.
type Matrix struct {
	size int
	rows []map[int]float64

	// compressed rows, rebuilt when dirty
	rowPtr []int
	cols   []int
	vals   []float64
	dirty  bool

	symmetric      bool
	symmetryCached bool

	// solver scratch
	r, rHat, p, v, s, t []float64
}

func New(size int) *Matrix {
	m := &Matrix{}
	m.ResetDimensions(size)
	return m
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int { return m.size }

// ResetDimensions drops every entry and reallocates the solver buffers for a
// matrix of the given size.
func (m *Matrix) ResetDimensions(size int) {
	if size < 0 {
		panic(fmt.Sprintf("invalid matrix size: %d", size))
	}
	m.size = size
	m.rows = make([]map[int]float64, size)
	m.r = make([]float64, size)
	m.rHat = make([]float64, size)
	m.p = make([]float64, size)
	m.v = make([]float64, size)
	m.s = make([]float64, size)
	m.t = make([]float64, size)
	m.invalidate()
}

// Clear removes every entry but keeps the dimensions.
func (m *Matrix) Clear() {
	for i := range m.rows {
		m.rows[i] = nil
	}
	m.invalidate()
}

func (m *Matrix) invalidate() {
	m.dirty = true
	m.symmetryCached = false
}

func (m *Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.size {
		panic(fmt.Sprintf("invalid row index: %d", row))
	}
	if col < 0 || col >= m.size {
		panic(fmt.Sprintf("invalid column index: %d", col))
	}
}

// Set stores value at (row, col), replacing any previous value.
func (m *Matrix) Set(row, col int, value float64) {
	m.checkIndex(row, col)
	if m.rows[row] == nil {
		m.rows[row] = make(map[int]float64, 5)
	}
	m.rows[row][col] = value
	m.invalidate()
}

// At returns the value at (row, col), or 0 if no entry is stored.
func (m *Matrix) At(row, col int) float64 {
	m.checkIndex(row, col)
	return m.rows[row][col]
}

// NonZeros returns the number of stored entries.
func (m *Matrix) NonZeros() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

// RowEntries returns the number of entries stored in row.
func (m *Matrix) RowEntries(row int) int {
	m.checkIndex(row, 0)
	return len(m.rows[row])
}

// IsSymmetric reports whether A equals its transpose exactly.
func (m *Matrix) IsSymmetric() bool {
	if m.symmetryCached {
		return m.symmetric
	}
	m.symmetric = true
	for i, row := range m.rows {
		for j, a := range row {
			if m.rows[j][i] != a {
				m.symmetric = false
				break
			}
		}
		if !m.symmetric {
			break
		}
	}
	m.symmetryCached = true
	return m.symmetric
}

func (m *Matrix) compile() {
	if !m.dirty {
		return
	}
	nnz := m.NonZeros()
	m.rowPtr = make([]int, m.size+1)
	m.cols = make([]int, 0, nnz)
	m.vals = make([]float64, 0, nnz)
	for i, row := range m.rows {
		// sorted columns keep the summation order, and so the results,
		// reproducible between runs
		for _, j := range slices.Sorted(maps.Keys(row)) {
			m.cols = append(m.cols, j)
			m.vals = append(m.vals, row[j])
		}
		m.rowPtr[i+1] = len(m.cols)
	}
	m.dirty = false
}

// MulVec computes dst = A·x. dst and x must not overlap.
func (m *Matrix) MulVec(dst, x []float64) {
	m.checkVector("dst", dst)
	m.checkVector("x", x)
	m.compile()
	m.mulVec(dst, x)
}

func (m *Matrix) mulVec(dst, x []float64) {
	for i := 0; i < m.size; i++ {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.vals[k] * x[m.cols[k]]
		}
		dst[i] = sum
	}
}

func (m *Matrix) checkVector(name string, v []float64) {
	if len(v) != m.size {
		panic(fmt.Sprintf("%s has length %d, matrix size is %d", name, len(v), m.size))
	}
}
