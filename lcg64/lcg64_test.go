package lcg64

import (
	"testing"

	"github.com/parastream/trng/catalog"
	"github.com/stretchr/testify/require"
)

func lecuyer1() (uint64, uint64) {
	set, ok := catalog.LCG64.Find("LEcuyer1")
	if !ok {
		panic("catalog missing lcg64 LEcuyer1")
	}
	return set.A, set.B
}

func TestStepRecurrence(t *testing.T) {
	a, b := lecuyer1()
	e := New("lcg64", a, b, false)
	e.Seed()
	first := e.Step()
	require.Equal(t, a*0+b, first)
	second := e.Step()
	require.Equal(t, a*first+b, second)
}

func TestShiftVariantScramblesOutput(t *testing.T) {
	a, b := lecuyer1()
	plain := New("lcg64", a, b, false)
	shifted := New("lcg64s", a, b, true)
	plain.Seed()
	shifted.Seed()
	po := plain.Step()
	so := shifted.Step()
	require.NotEqual(t, po, so)
}

func TestJumpMatchesRepeatedStep(t *testing.T) {
	a, b := lecuyer1()
	direct := New("lcg64", a, b, false)
	jumped := New("lcg64", a, b, false)
	const n = 1000
	for i := 0; i < n; i++ {
		direct.step()
	}
	jumped.Jump(n)
	require.Equal(t, direct.r, jumped.r)
}

func TestJumpPow2MatchesRepeatedStep(t *testing.T) {
	a, b := lecuyer1()
	direct := New("lcg64", a, b, false)
	jumped := New("lcg64", a, b, false)
	const i = 10
	for s := 0; s < 1<<i; s++ {
		direct.step()
	}
	jumped.JumpPow2(i)
	require.Equal(t, direct.r, jumped.r)
}

func TestBackwardInvertsStep(t *testing.T) {
	a, b := lecuyer1()
	e := New("lcg64", a, b, false)
	e.SeedInt(42)
	before := e.r
	e.step()
	e.backward()
	require.Equal(t, before, e.r)
}

func TestSplitProducesInterleavedStreams(t *testing.T) {
	a, b := lecuyer1()
	const s = 3
	master := New("lcg64", a, b, false)
	master.SeedInt(7)

	var subs [s]*Engine
	for n := 0; n < s; n++ {
		e := New("lcg64", a, b, false)
		e.SeedInt(7)
		require.NoError(t, e.Split(s, uint32(n)))
		subs[n] = e
	}

	const rounds = 10
	masterOut := make([]uint64, rounds*s)
	for i := range masterOut {
		masterOut[i] = master.Step()
	}
	for n := 0; n < s; n++ {
		for k := 0; k < rounds; k++ {
			require.Equal(t, masterOut[k*s+n], subs[n].Step())
		}
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	a, b := lecuyer1()
	e := New("lcg64", a, b, true)
	e.SeedInt(271828)
	e.Step()
	text, err := e.MarshalText()
	require.NoError(t, err)

	e2 := New("lcg64", a, b, true)
	require.NoError(t, e2.UnmarshalText(text))
	require.Equal(t, e.Step(), e2.Step())
}
