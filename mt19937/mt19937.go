// Package mt19937 implements the classic Matsumoto-Nishimura Mersenne
// Twister in both its 32-bit and 64-bit forms. Neither variant supports
// the parallel sub-stream algebra; Discard is provided by direct
// stepping, matching the upstream reference generators this module's
// other engines are benchmarked against.
package mt19937

import (
	"fmt"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/serialize"
)

const (
	n32 = 624
	m32 = 397
	n64 = 312
	m64 = 156
)

// Engine32 is the 32-bit Mersenne Twister.
type Engine32 struct {
	mt  [n32]uint32
	idx int
}

// New32 builds an engine seeded to the canonical default (seed 5489).
func New32() *Engine32 {
	e := &Engine32{}
	e.SeedInt(5489)
	return e
}

func (e *Engine32) Min() uint64  { return 0 }
func (e *Engine32) Max() uint64  { return 0xFFFFFFFF }
func (e *Engine32) Name() string { return "mt19937" }

func (e *Engine32) Seed() { e.SeedInt(5489) }

// SeedInt expands a 32-bit seed via the canonical recurrence
// mt[i] = 1812433253*(mt[i-1] xor (mt[i-1]>>30)) + i.
func (e *Engine32) SeedInt(seed uint64) {
	e.mt[0] = uint32(seed)
	for i := 1; i < n32; i++ {
		prev := e.mt[i-1]
		e.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	e.idx = n32
}

func (e *Engine32) SeedSource(s seedsource.Source) error {
	for i := 0; i < n32; i++ {
		e.mt[i] = s.Uint32()
	}
	e.idx = n32
	return nil
}

func (e *Engine32) twist() {
	const (
		upperMask = 0x80000000
		lowerMask = 0x7FFFFFFF
	)
	for i := 0; i < n32; i++ {
		x := (e.mt[i] & upperMask) | (e.mt[(i+1)%n32] & lowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= 0x9908B0DF
		}
		e.mt[i] = e.mt[(i+m32)%n32] ^ xA
	}
	e.idx = 0
}

// Step advances the state and returns the tempered 32-bit output.
func (e *Engine32) Step() uint64 {
	if e.idx >= n32 {
		e.twist()
	}
	y := e.mt[e.idx]
	y ^= y >> 11
	y ^= (y << 7) & 0x9D2C5680
	y ^= (y << 15) & 0xEFC60000
	y ^= y >> 18
	e.idx++
	return uint64(y)
}

func (e *Engine32) Discard(n uint64) {
	for ; n > 0; n-- {
		e.Step()
	}
}

// MarshalText renders "[mt19937 () (mt... idx)]": the parameter block is
// empty (this engine has no tunable parameters), the status block holds
// the full 624-word array followed by the twist index.
func (e *Engine32) MarshalText() ([]byte, error) {
	vals := make([]uint64, n32+1)
	for i, v := range e.mt {
		vals[i] = uint64(v)
	}
	vals[n32] = uint64(e.idx)
	return []byte(fmt.Sprintf("[%s () %s]", e.Name(), serialize.FormatUints(vals))), nil
}

func (e *Engine32) UnmarshalText(data []byte) error {
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
	vals, err := sc.Uints(n32 + 1)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	var mt [n32]uint32
	for i := 0; i < n32; i++ {
		mt[i] = uint32(vals[i])
	}
	e.mt = mt
	e.idx = int(vals[n32])
	return nil
}

// Engine64 is the 64-bit Mersenne Twister variant.
type Engine64 struct {
	mt  [n64]uint64
	idx int
}

func New64() *Engine64 {
	e := &Engine64{}
	e.SeedInt(5489)
	return e
}

func (e *Engine64) Min() uint64  { return 0 }
func (e *Engine64) Max() uint64  { return ^uint64(0) }
func (e *Engine64) Name() string { return "mt19937_64" }

func (e *Engine64) Seed() { e.SeedInt(5489) }

func (e *Engine64) SeedInt(seed uint64) {
	e.mt[0] = seed
	for i := 1; i < n64; i++ {
		prev := e.mt[i-1]
		e.mt[i] = 6364136223846793005*(prev^(prev>>62)) + uint64(i)
	}
	e.idx = n64
}

func (e *Engine64) SeedSource(s seedsource.Source) error {
	for i := 0; i < n64; i++ {
		hi := uint64(s.Uint32())
		lo := uint64(s.Uint32())
		e.mt[i] = hi<<32 | lo
	}
	e.idx = n64
	return nil
}

func (e *Engine64) twist() {
	const (
		upperMask = uint64(0xFFFFFFFF80000000)
		lowerMask = uint64(0x7FFFFFFF)
	)
	for i := 0; i < n64; i++ {
		x := (e.mt[i] & upperMask) | (e.mt[(i+1)%n64] & lowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= 0xB5026F5AA96619E9
		}
		e.mt[i] = e.mt[(i+m64)%n64] ^ xA
	}
	e.idx = 0
}

func (e *Engine64) Step() uint64 {
	if e.idx >= n64 {
		e.twist()
	}
	y := e.mt[e.idx]
	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71D67FFFEDA60000
	y ^= (y << 37) & 0xFFF7EEE000000000
	y ^= y >> 43
	e.idx++
	return y
}

func (e *Engine64) Discard(n uint64) {
	for ; n > 0; n-- {
		e.Step()
	}
}

func (e *Engine64) MarshalText() ([]byte, error) {
	vals := make([]uint64, n64+1)
	copy(vals, e.mt[:])
	vals[n64] = uint64(e.idx)
	return []byte(fmt.Sprintf("[%s () %s]", e.Name(), serialize.FormatUints(vals))), nil
}

func (e *Engine64) UnmarshalText(data []byte) error {
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
	vals, err := sc.Uints(n64 + 1)
	if err != nil {
		return err
	}
	if err := sc.Expect(']'); err != nil {
		return err
	}
	var mt [n64]uint64
	copy(mt[:], vals[:n64])
	e.mt = mt
	e.idx = int(vals[n64])
	return nil
}
