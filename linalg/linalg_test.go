package linalg

import (
	"testing"

	"github.com/parastream/trng/intmath"
	"github.com/parastream/trng/trngerr"
	"github.com/stretchr/testify/require"
)

func testPrime() intmath.PrimeSpec {
	return intmath.NewPrimeSpec(31, 1)
}

func TestIdentityMulVec(t *testing.T) {
	p := testPrime()
	id := Identity(3, p)
	v := []int64{1, 2, 3}
	require.Equal(t, v, id.MulVec(v))
}

func TestMatrixPowSquaresCorrectly(t *testing.T) {
	p := testPrime()
	m := NewMatrix(2, p)
	// Companion-style doubling matrix: [[0,1],[1,1]] (Fibonacci recurrence).
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 1)

	m1 := m.Pow(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, m.At(i, j), m1.At(i, j))
		}
	}

	m2 := m.Pow(2)
	want := m.Mul(m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, want.At(i, j), m2.At(i, j))
		}
	}
}

func TestGaussSolveIdentity(t *testing.T) {
	p := testPrime()
	id := Identity(3, p)
	b := []int64{5, 6, 7}
	x, err := GaussSolve(id, b)
	require.NoError(t, err)
	require.Equal(t, b, x)
}

func TestGaussSolveKnownSystem(t *testing.T) {
	p := testPrime()
	// [[1,1],[0,1]] x = [3,1] => row2: x2=1, then row1: x1+x2=3 => x1=2
	m := NewMatrix(2, p)
	m.Set(0, 0, 1)
	m.Set(0, 1, 1)
	m.Set(1, 0, 0)
	m.Set(1, 1, 1)
	x, err := GaussSolve(m, []int64{3, 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), x[0])
	require.Equal(t, int64(1), x[1])

	// Verify by reapplying m to x.
	got := m.MulVec(x)
	require.Equal(t, []int64{3, 1}, got)
}

func TestGaussSolveSingular(t *testing.T) {
	p := testPrime()
	m := NewMatrix(2, p)
	// All-zero matrix has no pivot anywhere.
	_, err := GaussSolve(m, []int64{1, 1})
	require.ErrorIs(t, err, trngerr.ErrSingularSystem)
}

func TestGF2IdentityMulVec(t *testing.T) {
	id := IdentityGF2(4)
	v := []uint64{0b1011}
	require.Equal(t, v, id.MulVec(v))
}

func TestGF2MatrixPowMatchesRepeatedMul(t *testing.T) {
	m := NewGF2Matrix(3)
	m.SetBit(0, 1, true)
	m.SetBit(1, 2, true)
	m.SetBit(2, 0, true)
	m.SetBit(2, 1, true)

	cubed := m.Mul(m).Mul(m)
	got := m.Pow(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, cubed.Bit(i, j), got.Bit(i, j))
		}
	}
}

func TestGF2MatrixPowZeroIsIdentity(t *testing.T) {
	m := NewGF2Matrix(5)
	m.SetBit(0, 1, true)
	got := m.Pow(0)
	id := IdentityGF2(5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, id.Bit(i, j), got.Bit(i, j))
		}
	}
}
