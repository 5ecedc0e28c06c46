// Package intmath implements the modular integer kernel shared by every MRG
// and YARN engine: modular inverse, a fast-reduction helper specialised per
// prime, and binary modular exponentiation. It is the Go counterpart of
// int_math.hpp's modulo_invers / modulo_helper / power<m,b> machinery.
package intmath

import (
	"fmt"

	"github.com/parastream/trng/trngerr"
)

// ModuloInverse returns x such that a*x ≡ 1 (mod m), via the extended
// Euclidean algorithm. It reports ErrInvalidArgument when a<=0 or m<=1, and
// ErrNoInverse when gcd(a,m) != 1.
func ModuloInverse(a, m int64) (int64, error) {
	if a <= 0 || m <= 1 {
		return 0, fmt.Errorf("intmath: modulo inverse of %d mod %d: %w", a, m, trngerr.ErrInvalidArgument)
	}
	r0, r1 := m, a%m
	s0, s1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	if r0 != 1 {
		return 0, fmt.Errorf("intmath: modulo inverse of %d mod %d: %w", a, m, trngerr.ErrNoInverse)
	}
	s0 %= m
	if s0 < 0 {
		s0 += m
	}
	return s0, nil
}

// PrimeSpec describes one of the catalogue primes of the form p = 2^e - k,
// which admits a cheap reduction: a value x < p^2 can be folded back below
// 2^e by repeatedly adding k*(x>>e) and masking, avoiding a 64-bit division
// per multiply-accumulate step. This mirrors the compile-time
// modulo_helper<m,r> partial specialisations of the source, generalised to
// a runtime-constructed, reusable table since Go has no const-generic
// template parameters to specialise on.
type PrimeSpec struct {
	P    int64 // the modulus itself
	e    uint  // bit length such that P = 2^e - k
	k    int64
	mask int64 // (1<<e)-1
}

// NewPrimeSpec builds the reduction constants for the modulus P = 2^e - k.
// It does not check that P is prime: the catalogue primes are fixed
// literals, never user input.
func NewPrimeSpec(e uint, k int64) PrimeSpec {
	p := (int64(1) << e) - k
	return PrimeSpec{P: p, e: e, k: k, mask: (int64(1) << e) - 1}
}

// Reduce folds x (assumed non-negative and less than P*P) into [0, P).
func (s PrimeSpec) Reduce(x int64) int64 {
	for x > s.mask {
		hi := x >> s.e
		x = (x & s.mask) + hi*s.k
	}
	if x >= s.P {
		x -= s.P
	}
	return x
}

// MulMod returns a*b mod P using the fast reduction above.
func (s PrimeSpec) MulMod(a, b int64) int64 {
	return s.Reduce(a * b)
}

// AddMod returns a+b mod P.
func (s PrimeSpec) AddMod(a, b int64) int64 {
	r := a + b
	if r >= s.P {
		r -= s.P
	}
	return r
}

// Pow returns x^n mod P via right-to-left binary exponentiation.
func (s PrimeSpec) Pow(x int64, n int64) int64 {
	result := int64(1)
	base := s.Reduce(x)
	for n > 0 {
		if n&1 == 1 {
			result = s.MulMod(result, base)
		}
		base = s.MulMod(base, base)
		n >>= 1
	}
	return result
}
