package intmath

import (
	"errors"
	"testing"

	"github.com/parastream/trng/trngerr"
	"github.com/stretchr/testify/require"
)

func TestModuloInverse(t *testing.T) {
	inv, err := ModuloInverse(3, 11)
	require.NoError(t, err)
	require.Equal(t, int64(4), inv) // 3*4 = 12 = 1 mod 11
}

func TestModuloInverseNoInverse(t *testing.T) {
	_, err := ModuloInverse(4, 8)
	require.ErrorIs(t, err, trngerr.ErrNoInverse)
}

func TestModuloInverseInvalidArgument(t *testing.T) {
	_, err := ModuloInverse(0, 11)
	require.True(t, errors.Is(err, trngerr.ErrInvalidArgument))

	_, err = ModuloInverse(3, 1)
	require.True(t, errors.Is(err, trngerr.ErrInvalidArgument))
}

func TestPrimeSpecMersenne31(t *testing.T) {
	p := NewPrimeSpec(31, 1)
	require.Equal(t, int64(2147483647), p.P)
}

func TestPrimeSpecReduceIdempotentBelowP(t *testing.T) {
	p := NewPrimeSpec(31, 1)
	require.Equal(t, int64(0), p.Reduce(0))
	require.Equal(t, int64(5), p.Reduce(5))
	require.Equal(t, int64(0), p.Reduce(p.P))
}

func TestPrimeSpecMulModMatchesNaive(t *testing.T) {
	p := NewPrimeSpec(31, 21069) // 2^31 - 21069
	a, b := int64(123456789), int64(987654321)
	got := p.MulMod(a, b)
	want := (a * b) % p.P
	require.Equal(t, want, got)
}

func TestPrimeSpecAddMod(t *testing.T) {
	p := NewPrimeSpec(31, 1)
	require.Equal(t, int64(3), p.AddMod(1, 2))
	require.Equal(t, int64(0), p.AddMod(p.P-1, 1))
}

func TestPrimeSpecPowFermat(t *testing.T) {
	p := NewPrimeSpec(31, 1)
	// Fermat's little theorem: x^(P-1) = 1 mod P for x coprime to P.
	got := p.Pow(7, p.P-1)
	require.Equal(t, int64(1), got)
}

func TestPrimeSpecPowZeroExponent(t *testing.T) {
	p := NewPrimeSpec(31, 1)
	require.Equal(t, int64(1), p.Pow(12345, 0))
}
