package lagfib

import (
	"testing"

	"github.com/parastream/trng/catalog"
	"github.com/stretchr/testify/require"
)

func r250() (int, int) {
	set, ok := catalog.LagFib.Find("r250")
	if !ok {
		panic("catalog missing lagfib r250")
	}
	return set.A, set.B
}

func TestRingSizeIsPowerOfTwoAtLeastB(t *testing.T) {
	a, b := r250()
	e := New("r250", a, b, Xor)
	require.GreaterOrEqual(t, e.size, b)
	require.Equal(t, e.size&(e.size-1), 0)
}

func TestStepIsDeterministic(t *testing.T) {
	a, b := r250()
	e1 := New("r250", a, b, Xor)
	e2 := New("r250", a, b, Xor)
	for i := 0; i < 500; i++ {
		require.Equal(t, e1.Step(), e2.Step())
	}
}

func TestXorStepCombinesLags(t *testing.T) {
	e := New("tiny", 2, 3, Xor)
	v := e.step()
	// the new word is r[index-a] xor r[index-b]
	require.Equal(t, v, e.r[(e.index-2)&e.mask]^e.r[(e.index-3)&e.mask])
}

func TestPlusDiscardFallsBackToDirectStepping(t *testing.T) {
	direct := New("tiny-plus", 2, 3, Plus)
	discarded := New("tiny-plus", 2, 3, Plus)
	const n = 50
	for i := 0; i < n; i++ {
		direct.step()
	}
	discarded.Discard(n)
	require.Equal(t, direct.r, discarded.r)
	require.Equal(t, direct.index, discarded.index)
}

func TestXorDiscardFastPathMatchesDirectStepping(t *testing.T) {
	// a=2, b=3 => size=4, pivot=4^3=64; n=100 crosses the fast-path threshold.
	direct := New("tiny", 2, 3, Xor)
	discarded := New("tiny", 2, 3, Xor)
	const n = 100
	for i := 0; i < n; i++ {
		direct.step()
	}
	discarded.Discard(n)
	require.Equal(t, direct.r, discarded.r)
	require.Equal(t, direct.index, discarded.index)
}

func TestXorDiscardFastPathMatchesDirectSteppingLargerLag(t *testing.T) {
	// a=5, b=9 => size=16, pivot=16^3=4096; n=5000 crosses the threshold.
	direct := New("tiny2", 5, 9, Xor)
	discarded := New("tiny2", 5, 9, Xor)
	const n = 5000
	for i := 0; i < n; i++ {
		direct.step()
	}
	discarded.Discard(n)
	require.Equal(t, direct.r, discarded.r)
	require.Equal(t, direct.index, discarded.index)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	a, b := r250()
	e := New("r250", a, b, Xor)
	e.Step()
	e.Step()
	e.Step()
	text, err := e.MarshalText()
	require.NoError(t, err)

	e2 := New("r250", a, b, Xor)
	require.NoError(t, e2.UnmarshalText(text))
	require.Equal(t, e.Step(), e2.Step())
}

func TestUnmarshalLeavesEngineUnchangedOnFailure(t *testing.T) {
	a, b := r250()
	e := New("r250", a, b, Xor)
	before := append([]uint64(nil), e.r...)
	require.Error(t, e.UnmarshalText([]byte("garbage")))
	require.Equal(t, before, e.r)
}

func TestSeedSourceFillsOnlyBSlots(t *testing.T) {
	a, b := r250()
	e := New("r250", a, b, Xor)
	type fixedSource struct{ v uint32 }
	var src fixedSource
	src.v = 1
	err := e.SeedSource(uint32Source{&src.v})
	require.NoError(t, err)
}

type uint32Source struct{ v *uint32 }

func (s uint32Source) Uint32() uint32 { return *s.v }
