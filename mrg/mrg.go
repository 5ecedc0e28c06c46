// Package mrg implements the order-k multiple-recursive generator family,
// k in {2,3,4,5}, over one of the catalogue primes. It is the Go
// generalisation of the source's per-order mrg2s/mrg3s/mrg5s template
// specialisations: a single runtime-sized implementation parametrised by
// the coefficient slice's length, since Go generics cannot fold a
// const-generic array length the way the C++ templates do.
//
// Engine carries the full parallel sub-stream algebra: Step, JumpPow2,
// Jump, Discard and Split, per the companion-matrix/backward-step
// construction of mrg3s.hpp.
package mrg

import (
	"fmt"

	"github.com/parastream/trng/intmath"
	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/linalg"
	"github.com/parastream/trng/serialize"
	"github.com/parastream/trng/trngerr"
)

// Engine is an order-k MRG. The zero value is not usable; construct with New.
type Engine struct {
	name string
	p    intmath.PrimeSpec
	a    []int64 // coefficients, a[0] weights the most recent state word
	r    []int64 // state, r[0] most recent
}

// New builds an order-len(a) MRG with the given name (used only for
// serialization) and modulus, seeded to its default status.
func New(name string, p intmath.PrimeSpec, a []int64) *Engine {
	e := &Engine{name: name, p: p, a: append([]int64(nil), a...)}
	e.Seed()
	return e
}

// Order returns k, the number of lagged terms.
func (e *Engine) Order() int { return len(e.a) }

func (e *Engine) Min() uint64 { return 0 }
func (e *Engine) Max() uint64 { return uint64(e.p.P - 1) }
func (e *Engine) Name() string { return e.name }

// Seed resets the status to the well-known default: r[0]=0, all other
// lags 1, matching mrg3s's status_type() default constructor generalised
// to order k.
func (e *Engine) Seed() {
	k := len(e.a)
	e.r = make([]int64, k)
	for i := 1; i < k; i++ {
		e.r[i] = 1
	}
}

// SeedInt expands a single integer seed deterministically via SplitMix64
// to fill every lag.
func (e *Engine) SeedInt(seed uint64) {
	_ = e.SeedSource(seedsource.NewSplitMix64(seed))
}

// SeedSource draws one 32-bit word per lag, reducing each modulo P.
func (e *Engine) SeedSource(s seedsource.Source) error {
	k := len(e.a)
	r := make([]int64, k)
	for i := 0; i < k; i++ {
		r[i] = int64(s.Uint32()) % e.p.P
	}
	e.r = r
	return nil
}

func (e *Engine) step() int64 {
	k := len(e.a)
	var t int64
	for i := 0; i < k; i++ {
		t = e.p.AddMod(t, e.p.MulMod(e.a[i], e.r[i]))
	}
	for i := k - 1; i > 0; i-- {
		e.r[i] = e.r[i-1]
	}
	e.r[0] = t
	return t
}

// Step advances the state and returns the raw output in [0, P).
func (e *Engine) Step() uint64 {
	return uint64(e.step())
}

// Discard advances the state n steps without returning the outputs.
func (e *Engine) Discard(n uint64) { e.Jump(n) }

// Head returns the current most recent lag, i.e. the raw value the last
// Step call produced. Used by package yarn to apply the non-linear output
// transform without duplicating the recurrence.
func (e *Engine) Head() int64 { return e.r[0] }

func (e *Engine) companionMatrix() *linalg.Matrix {
	k := len(e.a)
	m := linalg.NewMatrix(k, e.p)
	for j := 0; j < k; j++ {
		m.Set(0, j, e.a[j])
	}
	for i := 1; i < k; i++ {
		m.Set(i, i-1, 1)
	}
	return m
}

// JumpPow2 advances the state by 2^i steps via i repeated squarings of the
// companion matrix, matching jump2's doubling loop.
func (e *Engine) JumpPow2(i uint) {
	b := e.companionMatrix()
	for s := uint(0); s < i; s++ {
		b = b.Mul(b)
	}
	e.r = b.MulVec(e.r)
}

// Jump advances the state by n steps, stepping directly below 16 and via
// binary decomposition into JumpPow2 calls above it.
func (e *Engine) Jump(n uint64) {
	if n < 16 {
		for ; n > 0; n-- {
			e.step()
		}
		return
	}
	i := uint(0)
	for n > 0 {
		if n&1 == 1 {
			e.JumpPow2(i)
		}
		i++
		n >>= 1
	}
}

// backward inverts one step: given the current state, recovers the
// predecessor state's oldest lag. When the highest-order coefficient is
// zero the inversion is underdetermined; per the source this case is
// resolved by filling the recovered lag with zero rather than searching
// for a consistent value (preserved verbatim, not re-derived).
func (e *Engine) backward() {
	k := len(e.a)
	var t int64
	if e.a[k-1] != 0 {
		acc := e.r[0]
		for j := 0; j < k-1; j++ {
			acc = e.p.AddMod(acc, e.p.P-e.p.MulMod(e.a[j], e.r[j+1]))
		}
		inv, err := intmath.ModuloInverse(e.a[k-1], e.p.P)
		if err != nil {
			// a[k-1] is nonzero but not invertible mod a composite P; cannot
			// happen for the catalogue's prime moduli. Zero-fill defensively.
			t = 0
		} else {
			t = e.p.MulMod(acc, inv)
		}
	}
	// predecessor's lags are (r[1],...,r[k-1],t).
	for i := 0; i < k-1; i++ {
		e.r[i] = e.r[i+1]
	}
	e.r[k-1] = t
}

// Split reconfigures the engine to emit the n-th of s equidistant
// interleaved sub-streams: advance to collect 2k samples spaced s apart,
// solve the resulting Toeplitz system for new recurrence coefficients,
// then rewind the state by k backward steps.
func (e *Engine) Split(s, n uint32) error {
	if s < 1 || n >= s {
		return fmt.Errorf("mrg: split(%d, %d): %w", s, n, trngerr.ErrInvalidArgument)
	}
	if s <= 1 {
		return nil
	}
	k := len(e.a)
	q := make([]int64, 2*k)
	e.Jump(uint64(n) + 1)
	q[0] = e.r[0]
	for i := 1; i < 2*k; i++ {
		e.Jump(uint64(s))
		q[i] = e.r[0]
	}
	b := linalg.NewMatrix(k, e.p)
	rhs := make([]int64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			b.Set(i, j, q[k-1+i-j])
		}
		rhs[i] = q[k+i]
	}
	newA, err := linalg.GaussSolve(b, rhs)
	if err != nil {
		return fmt.Errorf("mrg: split(%d, %d): %w", s, n, err)
	}
	e.a = newA
	for i := 0; i < k; i++ {
		e.r[i] = q[k-1-i]
	}
	for i := 0; i < k; i++ {
		e.backward()
	}
	return nil
}

// MarshalText renders the canonical "[name (a...) (r...)]" form.
func (e *Engine) MarshalText() ([]byte, error) {
	s := fmt.Sprintf("[%s %s %s]", e.name, serialize.FormatInts(e.a), serialize.FormatInts(e.r))
	return []byte(s), nil
}

// UnmarshalText parses the canonical form, leaving e unchanged on failure.
func (e *Engine) UnmarshalText(data []byte) error {
	sc := serialize.NewScanner(data)
	if err := sc.Expect('['); err != nil {
		return err
	}
	if err := sc.ExpectLiteral(e.name); err != nil {
		return err
	}
	k := len(e.a)
	a, err := sc.Ints(k)
	if err != nil {
		return err
	}
	r, err := sc.Ints(k)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	e.a, e.r = a, r
	return nil
}
