// Package yarn implements the YARN non-linear output transform: an MRG
// head recurrence wrapped by g^head mod p, computed via a precomputed
// two-level table (65536 + 32768 entries) rather than a discrete
// exponentiation per output. The table and the generator g are immutable,
// process-wide artefacts per (modulus, generator) pair, built lazily once
// and shared by every engine instance over that pair.
package yarn

import (
	"sync"

	"github.com/parastream/trng/internal/seedsource"
	"github.com/parastream/trng/intmath"
	"github.com/parastream/trng/mrg"
)

// powerTable is the two-level g^x mod p lookup, T0 over the low 16 bits of
// x and T1 over the high bits, combined as T1[x>>16]*T0[x&0xFFFF] mod p.
type powerTable struct {
	p  intmath.PrimeSpec
	t0 []int64
	t1 []int64
}

func buildPowerTable(p intmath.PrimeSpec, gen int64) *powerTable {
	t := &powerTable{p: p, t0: make([]int64, 1<<16), t1: make([]int64, 1<<15)}
	for i := 0; i < 1<<16; i++ {
		t.t0[i] = p.Pow(gen, int64(i))
	}
	base := p.Pow(gen, 1<<16)
	acc := int64(1)
	for i := 0; i < 1<<15; i++ {
		t.t1[i] = acc
		acc = p.MulMod(acc, base)
	}
	return t
}

func (t *powerTable) Eval(x int64) int64 {
	if x == 0 {
		return 0
	}
	return t.p.MulMod(t.t1[x>>16], t.t0[x&0xFFFF])
}

var tableCache sync.Map // key: [2]int64{p.P, gen} -> *powerTable

func sharedTable(p intmath.PrimeSpec, gen int64) *powerTable {
	key := [2]int64{p.P, gen}
	if v, ok := tableCache.Load(key); ok {
		return v.(*powerTable)
	}
	t := buildPowerTable(p, gen)
	actual, _ := tableCache.LoadOrStore(key, t)
	return actual.(*powerTable)
}

// Engine is an MRG head recurrence wrapped by the non-linear g^x output
// transform. It delegates Step/Jump/Split's state algebra entirely to the
// embedded MRG and only changes what a single output value means.
type Engine struct {
	name  string
	head  *mrg.Engine
	gen   int64
	table *powerTable
}

// New builds a YARN engine over the given MRG head recurrence parameters.
func New(name string, p intmath.PrimeSpec, a []int64, gen int64) *Engine {
	return &Engine{
		name:  name,
		head:  mrg.New(name, p, a),
		gen:   gen,
		table: sharedTable(p, gen),
	}
}

func (e *Engine) Min() uint64  { return 0 }
func (e *Engine) Max() uint64  { return e.head.Max() }
func (e *Engine) Name() string { return e.name }

func (e *Engine) Seed()                   { e.head.Seed() }
func (e *Engine) SeedInt(seed uint64)     { e.head.SeedInt(seed) }
func (e *Engine) SeedSource(s seedsource.Source) error {
	return e.head.SeedSource(s)
}

// Step advances the head recurrence and returns the transformed output.
func (e *Engine) Step() uint64 {
	e.head.Step()
	return uint64(e.table.Eval(e.head.Head()))
}

func (e *Engine) Discard(n uint64)    { e.head.Discard(n) }
func (e *Engine) JumpPow2(i uint)     { e.head.JumpPow2(i) }
func (e *Engine) Jump(n uint64)       { e.head.Jump(n) }
func (e *Engine) Split(s, n uint32) error {
	return e.head.Split(s, n)
}

// MarshalText delegates to the embedded MRG's parameter/status rendering;
// only the outer engine name differs from a plain MRG's serialization.
func (e *Engine) MarshalText() ([]byte, error) {
	return e.head.MarshalText()
}

// UnmarshalText delegates to the embedded MRG, leaving e unchanged on
// failure (the head engine enforces that invariant itself).
func (e *Engine) UnmarshalText(data []byte) error {
	return e.head.UnmarshalText(data)
}
