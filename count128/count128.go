// Package count128 implements the 128-bit counter-based hybrid engine:
// a 128-bit counter advanced by a fixed odd increment, scrambled through a
// 64-bit multiply-add and three xor-shifts. Its parallel stream algebra
// (split/jump/jump2) operates purely on the 128-bit increment and counter,
// needing no matrix exponentiation since the recurrence is pure addition.
package count128

import (
	"fmt"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/serialize"
	"github.com/parastream/trng/trngerr"
	"github.com/parastream/trng/uint128"
)

// Engine is the 128-bit counter-LCG hybrid. The caller-supplied increment
// must be odd for the full 2^128 period guarantee; this is a documented
// precondition, not runtime-checked, matching the source's treatment of
// the same invariant.
type Engine struct {
	name      string
	increment uint128.Uint128
	a, b      uint64
	r         uint128.Uint128
}

// New builds an engine with the given name, 128-bit increment and 64-bit
// scramble multiplier/addend, seeded to r=0.
func New(name string, increment uint128.Uint128, a, b uint64) *Engine {
	return &Engine{name: name, increment: increment, a: a, b: b}
}

func (e *Engine) Min() uint64  { return 0 }
func (e *Engine) Max() uint64  { return ^uint64(0) }
func (e *Engine) Name() string { return e.name }

func (e *Engine) Seed() { e.r = uint128.Uint128{} }

func (e *Engine) SeedInt(seed uint64) {
	_ = e.SeedSource(seedsource.NewSplitMix64(seed))
}

// SeedSource draws four 32-bit words to fill the 128-bit counter.
func (e *Engine) SeedSource(s seedsource.Source) error {
	var hi, lo uint64
	for i := 0; i < 2; i++ {
		hi = hi<<32 + uint64(s.Uint32())
	}
	for i := 0; i < 2; i++ {
		lo = lo<<32 + uint64(s.Uint32())
	}
	e.r = uint128.New(hi, lo)
	return nil
}

func (e *Engine) step() {
	e.r = e.r.Add(e.increment)
}

// Step advances the counter and returns the scrambled 64-bit output.
func (e *Engine) Step() uint64 {
	e.step()
	t := (e.r.Lo() ^ e.r.Hi()) * e.a + e.b
	t ^= t >> 23
	t ^= t << 41
	t ^= t >> 18
	return t
}

func (e *Engine) Discard(n uint64) { e.Jump(n) }

// JumpPow2 advances the counter by 2^i steps (i taken mod 128).
func (e *Engine) JumpPow2(i uint) {
	e.r = e.r.Add(uint128.FromUint64(1).Lsh(i % 128).Mul(e.increment))
}

// Jump advances the counter by n steps.
func (e *Engine) Jump(n uint64) {
	e.r = e.r.Add(uint128.FromUint64(n).Mul(e.increment))
}

// Split reconfigures the engine to emit the n-th of s equidistant
// interleaved sub-streams by scaling the increment by s and offsetting the
// counter by n increments of the original stride.
func (e *Engine) Split(s, n uint32) error {
	if s < 1 || n >= s {
		return fmt.Errorf("count128: split(%d, %d): %w", s, n, trngerr.ErrInvalidArgument)
	}
	if s <= 1 {
		return nil
	}
	e.r = e.r.Add(uint128.FromUint64(uint64(n)).Mul(e.increment))
	e.r = e.r.Add(e.increment)
	e.increment = e.increment.Mul(uint128.FromUint64(uint64(s)))
	e.r = e.r.Sub(e.increment)
	return nil
}

// MarshalText renders the canonical "[name (increment a b) (r)]" form.
func (e *Engine) MarshalText() ([]byte, error) {
	s := fmt.Sprintf("[%s (%s %d %d) (%s)]", e.name, e.increment.String(), e.a, e.b, e.r.String())
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
	if err := sc.Expect('('); err != nil {
		return err
	}
	inc, err := sc.Uint128()
	if err != nil {
		return err
	}
	a, err := sc.Uint64()
	if err != nil {
		return err
	}
	b, err := sc.Uint64()
	if err != nil {
		return err
	}
	if err := sc.Expect(')'); err != nil {
		return err
	}
	if err := sc.Expect('('); err != nil {
		return err
	}
	r, err := sc.Uint128()
	if err != nil {
		return err
	}
	if err := sc.Expect(')'); err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	e.increment, e.a, e.b, e.r = inc, a, b, r
	return nil
}
