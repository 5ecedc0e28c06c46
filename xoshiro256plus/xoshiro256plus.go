// Package xoshiro256plus implements xoshiro256+, a 256-bit-state,
// 64-bit-output generator with a single fixed recurrence (no tunable
// parameters, hence no catalog entry). Its jump-ahead operators are GF(2)
// linear, built the same way lagfib's fast Discard is: a companion matrix
// over the state's bit vector, exponentiated via linalg.GF2Matrix.Pow.
// There is no Split: the generator has no published sub-stream-splitting
// construction independent of the jump functions.
package xoshiro256plus

import (
	"fmt"
	"sync"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/linalg"
	"github.com/parastream/trng/serialize"
)

// Engine is the xoshiro256+ generator: four 64-bit words, never all zero.
type Engine struct {
	s [4]uint64
}

// New builds an engine seeded to a fixed non-zero default status.
func New() *Engine {
	e := &Engine{}
	e.Seed()
	return e
}

func (e *Engine) Min() uint64  { return 0 }
func (e *Engine) Max() uint64  { return ^uint64(0) }
func (e *Engine) Name() string { return "xoshiro256plus" }

// Seed resets to a fixed non-zero default status.
func (e *Engine) Seed() {
	e.s = [4]uint64{1, 2, 3, 4}
}

func (e *Engine) SeedInt(seed uint64) {
	_ = e.SeedSource(seedsource.NewSplitMix64(seed))
}

// SeedSource draws eight 32-bit words to fill the four 64-bit state
// words, retrying if the draw lands on the all-zero state (which has no
// successor under the recurrence).
func (e *Engine) SeedSource(s seedsource.Source) error {
	for {
		var words [4]uint64
		for i := range words {
			hi := uint64(s.Uint32())
			lo := uint64(s.Uint32())
			words[i] = hi<<32 | lo
		}
		if words != [4]uint64{} {
			e.s = words
			return nil
		}
	}
}

func rotl(x uint64, k uint) uint64 {
	return x<<k | x>>(64-k)
}

func (e *Engine) step() uint64 {
	result := e.s[0] + e.s[3]
	t := e.s[1] << 17
	e.s[2] ^= e.s[0]
	e.s[3] ^= e.s[1]
	e.s[1] ^= e.s[2]
	e.s[0] ^= e.s[3]
	e.s[2] ^= t
	e.s[3] = rotl(e.s[3], 45)
	return result
}

// Step advances the state and returns s0+s3, sampled before the update.
func (e *Engine) Step() uint64 { return e.step() }

func (e *Engine) Discard(n uint64) {
	for ; n > 0; n-- {
		e.step()
	}
}

func (e *Engine) vector() []uint64 {
	return []uint64{e.s[0], e.s[1], e.s[2], e.s[3]}
}

func (e *Engine) setVector(v []uint64) {
	copy(e.s[:], v)
}

// stepMatrix is the 256x256 GF(2) matrix representing one call to step,
// built once by perturbing the zero state one bit at a time (step is
// linear in the state bits, so each column is the result of stepping the
// corresponding unit vector).
var stepMatrix *linalg.GF2Matrix
var stepMatrixOnce sync.Once

func sharedStepMatrix() *linalg.GF2Matrix {
	stepMatrixOnce.Do(func() {
		m := linalg.NewGF2Matrix(256)
		for bit := 0; bit < 256; bit++ {
			probe := &Engine{}
			probe.s[bit/64] = uint64(1) << uint(bit%64)
			probe.step()
			for row := 0; row < 4; row++ {
				w := probe.s[row]
				for b := 0; b < 64; b++ {
					if w&(uint64(1)<<uint(b)) != 0 {
						m.SetBit(row*64+b, bit, true)
					}
				}
			}
		}
		stepMatrix = m
	})
	return stepMatrix
}

func (e *Engine) applyMatrix(m *linalg.GF2Matrix) {
	v := e.vector()
	w := m.MulVec(v)
	e.setVector(w)
}

// JumpPow2 advances the state by 2^i steps, i taken mod 256.
func (e *Engine) JumpPow2(i uint) {
	i %= 256
	mp := sharedStepMatrix()
	for s := uint(0); s < i; s++ {
		mp = mp.Mul(mp)
	}
	e.applyMatrix(mp)
}

// Jump advances the state by n steps: direct stepping below 16, binary
// decomposition of matrix powers above it.
func (e *Engine) Jump(n uint64) {
	if n < 16 {
		e.Discard(n)
		return
	}
	m := sharedStepMatrix()
	mp := m.Pow(n)
	e.applyMatrix(mp)
}

// MarshalText renders "[xoshiro256plus () (s0 s1 s2 s3)]": the parameter
// block is empty since this engine has no tunable parameters.
func (e *Engine) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("[%s () %s]", e.Name(), serialize.FormatUints(e.s[:]))), nil
}

// UnmarshalText parses the canonical form, leaving e unchanged on failure.
func (e *Engine) UnmarshalText(data []byte) error {
	sc := serialize.NewScanner(data)
	if err := sc.Expect('['); err != nil {
		return err
	}
	if err := sc.ExpectLiteral(e.Name()); err != nil {
		return err
	}
	if err := sc.Expect('('); err != nil {
		return err
	}
	if err := sc.Expect(')'); err != nil {
		return err
	}
	vals, err := sc.Uints(4)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	copy(e.s[:], vals)
	return nil
}
