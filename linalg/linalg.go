// Package linalg implements the small amount of linear algebra the parallel
// stream algebra needs: matrix/vector multiply, matrix exponentiation by
// squaring, and Gaussian elimination with partial pivoting, all over ℤ/pℤ.
// A GF(2) bit-matrix type (addition = xor, multiplication = and) provides
// multiply, matrix-vector multiply and exponentiation for the xoshiro256+
// and lagged-Fibonacci jump operators; Gaussian elimination is implemented
// over ℤ/pℤ only.
package linalg

import (
	"fmt"

	"github.com/parastream/trng/intmath"
	"github.com/parastream/trng/trngerr"
)

// Matrix is a dense n×n matrix of residues mod P, row-major.
type Matrix struct {
	n    int
	p    intmath.PrimeSpec
	data []int64
}

// NewMatrix allocates a zeroed n×n matrix modulo p.P.
func NewMatrix(n int, p intmath.PrimeSpec) *Matrix {
	return &Matrix{n: n, p: p, data: make([]int64, n*n)}
}

// Identity returns the n×n identity matrix modulo p.P.
func Identity(n int, p intmath.PrimeSpec) *Matrix {
	m := NewMatrix(n, p)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func (m *Matrix) N() int { return m.n }

func (m *Matrix) At(i, j int) int64 { return m.data[i*m.n+j] }

func (m *Matrix) Set(i, j int, v int64) { m.data[i*m.n+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{n: m.n, p: m.p, data: make([]int64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Mul returns m*other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.n != other.n {
		panic("linalg: matrix size mismatch")
	}
	n := m.n
	out := NewMatrix(n, m.p)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			mik := m.At(i, k)
			if mik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.Set(i, j, m.p.AddMod(out.At(i, j), m.p.MulMod(mik, other.At(k, j))))
			}
		}
	}
	return out
}

// MulVec returns m*v.
func (m *Matrix) MulVec(v []int64) []int64 {
	n := m.n
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var acc int64
		for j := 0; j < n; j++ {
			acc = m.p.AddMod(acc, m.p.MulMod(m.At(i, j), v[j]))
		}
		out[i] = acc
	}
	return out
}

// Pow returns m^e via binary exponentiation, e >= 0.
func (m *Matrix) Pow(e uint64) *Matrix {
	result := Identity(m.n, m.p)
	base := m.Clone()
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// GaussSolve solves a*x = b mod P via Gaussian elimination with partial
// pivoting (search for a nonzero, invertible pivot in each column). Returns
// ErrSingularSystem if no pivot can be found for some column.
func GaussSolve(a *Matrix, b []int64) ([]int64, error) {
	n := a.n
	aug := a.Clone()
	rhs := make([]int64, n)
	copy(rhs, b)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if aug.At(row, col) != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("linalg: no pivot in column %d: %w", col, trngerr.ErrSingularSystem)
		}
		if pivot != col {
			swapRows(aug, col, pivot)
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}
		inv, err := intmath.ModuloInverse(aug.At(col, col), aug.p.P)
		if err != nil {
			return nil, fmt.Errorf("linalg: pivot not invertible in column %d: %w", col, trngerr.ErrSingularSystem)
		}
		for j := col; j < n; j++ {
			aug.Set(col, j, aug.p.MulMod(aug.At(col, j), inv))
		}
		rhs[col] = aug.p.MulMod(rhs[col], inv)
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug.At(row, col)
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				aug.Set(row, j, aug.p.AddMod(aug.At(row, j), aug.p.P-aug.p.MulMod(factor, aug.At(col, j))))
			}
			rhs[row] = aug.p.AddMod(rhs[row], aug.p.P-aug.p.MulMod(factor, rhs[col]))
		}
	}
	return rhs, nil
}

func swapRows(m *Matrix, i, j int) {
	n := m.n
	for c := 0; c < n; c++ {
		m.data[i*n+c], m.data[j*n+c] = m.data[j*n+c], m.data[i*n+c]
	}
}
