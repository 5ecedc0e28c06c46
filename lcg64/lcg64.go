// Package lcg64 implements the 64-bit linear congruential engine and its
// output-scrambled shift variant. The modulus is implicit in uint64
// wraparound arithmetic; jump-ahead uses the geometric-series doubling
// helpers f()/g() from lcg64_shift.hpp rather than matrix exponentiation,
// since a 1x1 "matrix" over ℤ/2^64ℤ is just repeated squaring of a and a
// geometric sum of its powers.
package lcg64

import (
	"fmt"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/serialize"
	"github.com/parastream/trng/trngerr"
)

// Engine is a 64-bit LCG: r <- a*r+b (mod 2^64). Shift controls whether
// Step applies the output-scrambling xor-shift cascade (lcg64_shift) or
// returns the raw state (plain lcg64).
type Engine struct {
	name  string
	shift bool
	a, b  uint64
	r     uint64
}

// New builds an engine with the given name, multiplier a, increment b and
// scrambling mode, seeded to its default status (r=0).
func New(name string, a, b uint64, shift bool) *Engine {
	return &Engine{name: name, shift: shift, a: a, b: b}
}

func (e *Engine) Min() uint64  { return 0 }
func (e *Engine) Max() uint64  { return ^uint64(0) }
func (e *Engine) Name() string { return e.name }

func (e *Engine) Seed() { e.r = 0 }

func (e *Engine) SeedInt(seed uint64) {
	_ = e.SeedSource(seedsource.NewSplitMix64(seed))
}

func (e *Engine) SeedSource(s seedsource.Source) error {
	var r uint64
	for i := 0; i < 2; i++ {
		r <<= 32
		r += uint64(s.Uint32())
	}
	e.r = r
	return nil
}

func (e *Engine) step() uint64 {
	e.r = e.a*e.r + e.b
	return e.r
}

// Step advances the state and returns the raw or scrambled output.
func (e *Engine) Step() uint64 {
	e.step()
	if !e.shift {
		return e.r
	}
	t := e.r
	t ^= t >> 17
	t ^= t << 31
	t ^= t >> 8
	return t
}

func (e *Engine) Discard(n uint64) { e.Jump(n) }

// log2Floor returns floor(log2(x)) for x>0.
func log2Floor(x uint64) uint {
	var y uint
	for x > 0 {
		x >>= 1
		y++
	}
	return y - 1
}

func powU64(x, n uint64) uint64 {
	result := uint64(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// geomProd returns sum(a^i, i=0..2^l-1) mod 2^64 via the doubling identity
// sum(a^i, i=0..2^l-1) = prod(1+a^(2^i), i=0..l-1).
func geomProd(l uint, a uint64) uint64 {
	p, res := a, uint64(1)
	for i := uint(0); i < l; i++ {
		res *= 1 + p
		p *= p
	}
	return res
}

func geomSum(s uint64, a uint64) uint64 {
	if s == 0 {
		return 0
	}
	e := log2Floor(s)
	var y, p uint64 = 0, a
	for l := uint(0); l <= e; l++ {
		if (uint64(1)<<l)&s > 0 {
			y = geomProd(l, a) + p*y
		}
		p *= p
	}
	return y
}

// JumpPow2 advances the state by 2^i steps.
func (e *Engine) JumpPow2(i uint) {
	e.r = e.r*powU64(e.a, uint64(1)<<i) + geomSum(uint64(1)<<i, e.a)*e.b
}

// Jump advances the state by n steps, stepping directly below 16 and via
// binary decomposition above it.
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

// backward rewinds the state by one step, exploiting that jumping forward
// by the engine's full period minus one (sum of 2^i for i=0..63) is
// equivalent to stepping backward once.
func (e *Engine) backward() {
	for i := uint(0); i < 64; i++ {
		e.JumpPow2(i)
	}
}

// Split reconfigures the engine to emit the n-th of s equidistant
// interleaved sub-streams: advance to n+1, then rescale the recurrence by
// s via the geometric-series helpers, and rewind one step.
func (e *Engine) Split(s, n uint32) error {
	if s < 1 || n >= s {
		return fmt.Errorf("lcg64: split(%d, %d): %w", s, n, trngerr.ErrInvalidArgument)
	}
	if s <= 1 {
		return nil
	}
	e.Jump(uint64(n) + 1)
	e.b *= geomSum(uint64(s), e.a)
	e.a = powU64(e.a, uint64(s))
	e.backward()
	return nil
}

// MarshalText renders the canonical "[name (a b) (r)]" form.
func (e *Engine) MarshalText() ([]byte, error) {
	s := fmt.Sprintf("[%s %s %s]", e.name, serialize.FormatUints([]uint64{e.a, e.b}), serialize.FormatUints([]uint64{e.r}))
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
	ab, err := sc.Uints(2)
	if err != nil {
		return err
	}
	r, err := sc.Uints(1)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	e.a, e.b, e.r = ab[0], ab[1], r[0]
	return nil
}
