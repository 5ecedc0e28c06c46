// Package lagfib implements the lagged Fibonacci engine family: a ring
// buffer of B 64-bit words recurring as r[i] = r[i-A] op r[i-B], where op
// is xor (a GF(2)-linear recurrence, admitting a matrix fast-discard) or
// addition mod 2^64 (not GF(2)-linear; Discard falls back to direct
// stepping, matching the source's scope for the plus variant).
package lagfib

import (
	"fmt"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/linalg"
	"github.com/parastream/trng/serialize"
)

// Op selects the lag-combination operator.
type Op int

const (
	Xor Op = iota
	Plus
)

// Engine is one (A, B, op) lagged Fibonacci generator. The ring buffer is
// sized to the next power of two at or above B, matching the source's
// int_math::ceil2(B) so the wraparound index can be masked instead of
// reduced by division.
type Engine struct {
	name    string
	a, b    int // lags, a < b
	op      Op
	size    int // ring buffer length, power of two >= b
	mask    int
	r       []uint64
	index   int
	jumpMat *linalg.GF2Matrix // lazily built, xor variant only
}

func ceilPow2(x int) int {
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}

// New builds a lagged Fibonacci engine with lags a<b and combination op,
// seeded to its default status (every ring word 1, see Seed).
func New(name string, a, b int, op Op) *Engine {
	size := ceilPow2(b)
	e := &Engine{name: name, a: a, b: b, op: op, size: size, mask: size - 1}
	e.r = make([]uint64, size)
	e.Seed()
	return e
}

func (e *Engine) Min() uint64  { return 0 }
func (e *Engine) Max() uint64  { return ^uint64(0) }
func (e *Engine) Name() string { return e.name }

// Seed resets to a fixed, non-degenerate default status (all lags 1,
// analogous to the other engine families' non-zero default invariant).
func (e *Engine) Seed() {
	for i := range e.r {
		e.r[i] = 1
	}
	e.index = e.b - 1
}

func (e *Engine) SeedInt(seed uint64) {
	_ = e.SeedSource(seedsource.NewSplitMix64(seed))
}

// SeedSource fills the first b ring slots from the source, one 64-bit
// word assembled from two 32-bit draws per slot.
func (e *Engine) SeedSource(s seedsource.Source) error {
	for i := 0; i < e.b; i++ {
		hi := uint64(s.Uint32())
		lo := uint64(s.Uint32())
		e.r[i] = hi<<32 | lo
	}
	e.index = e.b - 1
	return nil
}

func (e *Engine) combine(x, y uint64) uint64 {
	if e.op == Xor {
		return x ^ y
	}
	return x + y
}

func (e *Engine) step() uint64 {
	e.index = (e.index + 1) & e.mask
	e.r[e.index] = e.combine(e.r[(e.index-e.a)&e.mask], e.r[(e.index-e.b)&e.mask])
	return e.r[e.index]
}

// Step advances the ring buffer and returns the newest word.
func (e *Engine) Step() uint64 { return e.step() }

func (e *Engine) buildJumpMatrix() *linalg.GF2Matrix {
	m := linalg.NewGF2Matrix(e.size)
	for i := 0; i < e.size-1; i++ {
		m.SetBit(i, i+1, true)
	}
	m.SetBit(e.size-1, e.size-e.b, true)
	m.SetBit(e.size-1, e.size-e.a, true)
	return m
}

// Discard advances the state by n steps. For the xor variant, n larger
// than a small pivot is done via GF(2) matrix exponentiation of the shift
// operator instead of n individual steps; the plus variant (not GF(2)
// linear) always steps directly.
func (e *Engine) Discard(n uint64) {
	if e.op != Xor {
		for ; n > 0; n-- {
			e.step()
		}
		return
	}
	pivot := uint64(e.size) * uint64(e.size) * uint64(e.size)
	if n <= pivot || n < uint64(e.size) {
		for ; n > 0; n-- {
			e.step()
		}
		return
	}
	if e.jumpMat == nil {
		e.jumpMat = e.buildJumpMatrix()
	}
	partial := n - uint64(e.size)
	mp := e.jumpMat.Pow(partial)
	// Each of the 64 bit-planes of the ring's words obeys the same linear
	// xor recurrence independently, so the matrix is applied once per
	// plane and the results recombined.
	out := make([]uint64, e.size)
	for bitPlane := 0; bitPlane < 64; bitPlane++ {
		vec := make([]uint64, (e.size+63)/64)
		for i := 0; i < e.size; i++ {
			word := e.r[(e.index-i)&e.mask]
			bit := (word >> uint(bitPlane)) & 1
			setPacked(vec, e.size-1-i, bit == 1)
		}
		w := mp.MulVec(vec)
		for i := 0; i < e.size; i++ {
			if getPacked(w, e.size-1-i) {
				out[i] |= 1 << uint(bitPlane)
			}
		}
	}
	newIndex := (e.index + int(partial)) & e.mask
	for i := 0; i < e.size; i++ {
		e.r[(newIndex-i)&e.mask] = out[i]
	}
	e.index = newIndex
	for i := uint64(0); i < (n - partial); i++ {
		e.step()
	}
}

func setPacked(v []uint64, bit int, val bool) {
	if val {
		v[bit/64] |= 1 << uint(bit%64)
	}
}

func getPacked(v []uint64, bit int) bool {
	return v[bit/64]&(1<<uint(bit%64)) != 0
}

// MarshalText renders "[name (index r...)]".
func (e *Engine) MarshalText() ([]byte, error) {
	vals := make([]uint64, e.size+1)
	vals[0] = uint64(e.index)
	copy(vals[1:], e.r)
	return []byte(fmt.Sprintf("[%s %s]", e.name, serialize.FormatUints(vals))), nil
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
	vals, err := sc.Uints(e.size + 1)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	e.index = int(vals[0])
	copy(e.r, vals[1:])
	return nil
}
