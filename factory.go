package trng

import (
	"fmt"

	"github.com/parastream/trng/catalog"
	"github.com/parastream/trng/count128"
	"github.com/parastream/trng/intmath"
	"github.com/parastream/trng/lagfib"
	"github.com/parastream/trng/lcg64"
	"github.com/parastream/trng/mrg"
	"github.com/parastream/trng/mt19937"
	"github.com/parastream/trng/trngerr"
	"github.com/parastream/trng/uint128"
	"github.com/parastream/trng/xoshiro256plus"
	"github.com/parastream/trng/yarn"
)

// These PrimeSpec values cover each modulus the catalog names, built once
// at package init rather than per-constructor-call.
var (
	mrgSpec31       = intmath.NewPrimeSpec(31, 1)
	mrgSpec31s21069 = intmath.NewPrimeSpec(31, 21069)
	mrgSpec31s22641 = intmath.NewPrimeSpec(31, 22641)
)

func specForModulus(modulus int64) (intmath.PrimeSpec, error) {
	switch modulus {
	case mrgSpec31.P:
		return mrgSpec31, nil
	case mrgSpec31s21069.P:
		return mrgSpec31s21069, nil
	case mrgSpec31s22641.P:
		return mrgSpec31s22641, nil
	default:
		return intmath.PrimeSpec{}, fmt.Errorf("trng: unknown modulus %d: %w", modulus, trngerr.ErrInvalidArgument)
	}
}

// NewMRG builds a named MRG engine from a catalog order (catalog.MRG.OrderN)
// and one of its named parameter sets.
func NewMRG(order catalog.MRGOrder, name string) (*mrg.Engine, error) {
	set, ok := order.Find(name)
	if !ok {
		return nil, fmt.Errorf("trng: mrg parameter set %q: %w", name, trngerr.ErrInvalidArgument)
	}
	p, err := specForModulus(order.Modulus)
	if err != nil {
		return nil, err
	}
	return mrg.New(name, p, set.A), nil
}

// NewYarn builds a named YARN engine from a catalog order (catalog.YARN.OrderN)
// and one of its named parameter sets.
func NewYarn(order catalog.YarnOrder, name string) (*yarn.Engine, error) {
	set, ok := order.Find(name)
	if !ok {
		return nil, fmt.Errorf("trng: yarn parameter set %q: %w", name, trngerr.ErrInvalidArgument)
	}
	p, err := specForModulus(order.Modulus)
	if err != nil {
		return nil, err
	}
	return yarn.New(name, p, set.A, order.Gen), nil
}

// NewLCG64 builds a named 64-bit LCG engine, optionally with output
// scrambling (lcg64_shift).
func NewLCG64(name string, shift bool) (*lcg64.Engine, error) {
	set, ok := catalog.LCG64.Find(name)
	if !ok {
		return nil, fmt.Errorf("trng: lcg64 parameter set %q: %w", name, trngerr.ErrInvalidArgument)
	}
	return lcg64.New(name, set.A, set.B, shift), nil
}

// NewCount128 builds a named 128-bit counter-based engine.
func NewCount128(name string) (*count128.Engine, error) {
	set, ok := catalog.Count128.Find(name)
	if !ok {
		return nil, fmt.Errorf("trng: count128 parameter set %q: %w", name, trngerr.ErrInvalidArgument)
	}
	inc := uint128.New(catalog.Count128.Increment.Hi, catalog.Count128.Increment.Lo)
	return count128.New(name, inc, set.A, set.B), nil
}

// NewLagFibXor builds a named lagged Fibonacci xor engine.
func NewLagFibXor(name string) (*lagfib.Engine, error) {
	set, ok := catalog.LagFib.Find(name)
	if !ok {
		return nil, fmt.Errorf("trng: lagfib parameter set %q: %w", name, trngerr.ErrInvalidArgument)
	}
	return lagfib.New(name, set.A, set.B, lagfib.Xor), nil
}

// NewXoshiro256Plus builds an xoshiro256+ engine (no named parameter sets).
func NewXoshiro256Plus() *xoshiro256plus.Engine {
	return xoshiro256plus.New()
}

// NewMT19937 builds the 32-bit Mersenne Twister.
func NewMT19937() *mt19937.Engine32 { return mt19937.New32() }

// NewMT19937_64 builds the 64-bit Mersenne Twister.
func NewMT19937_64() *mt19937.Engine64 { return mt19937.New64() }
