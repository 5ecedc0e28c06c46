// Package trng is the module root: it declares the Engine and
// ParallelEngine contracts obeyed by every engine family (mrg, yarn, lcg64,
// count128, mt19937, lagfib, xoshiro256plus) and the SeedSource interface
// used to seed any of them from an external source of 32-bit words.
package trng

import "github.com/parastream/trng/internal/seedsource"

// Engine is the contract every random number engine in this module
// satisfies: a raw integer generator with deterministic, reproducible
// state, seedable from an integer or a SeedSource, and advanceable in bulk
// via Discard.
type Engine interface {
	// Min returns the smallest value Step can return.
	Min() uint64
	// Max returns the largest value Step can return.
	Max() uint64
	// Name returns the engine's canonical serialization name.
	Name() string
	// Step advances the state and returns the next raw output.
	Step() uint64
	// Seed resets the engine to its default, well-known status.
	Seed()
	// SeedInt reseeds from a single integer, expanded deterministically to
	// fill the full state.
	SeedInt(seed uint64)
	// SeedSource reseeds by drawing enough 32-bit words from s to fill the
	// full state. Returns an error if s cannot supply enough words.
	SeedSource(s SeedSource) error
	// Discard advances the state n steps without returning the outputs.
	Discard(n uint64)
}

// ParallelEngine is the contract obeyed by engine families that support the
// sub-stream algebra: jump-ahead by an arbitrary or power-of-two distance,
// and splitting the stream into s equidistant interleaved sub-streams.
type ParallelEngine interface {
	Engine
	// JumpPow2 advances the state by 2^i steps.
	JumpPow2(i uint)
	// Jump advances the state by n steps, n arbitrary.
	Jump(n uint64)
	// Split reconfigures the engine to emit the n-th of s equidistant
	// interleaved sub-streams of the original sequence. Requires s >= 1 and
	// n < s.
	Split(s, n uint32) error
}

// SeedSource is the minimal contract a caller-supplied entropy source must
// satisfy to seed any engine in this module: production of raw 32-bit
// words, one per call. It is a type alias so every engine family, which
// depends on internal/seedsource directly rather than on this root package,
// implements exactly this type without importing it.
type SeedSource = seedsource.Source
