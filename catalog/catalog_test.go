package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMRGOrder3Find(t *testing.T) {
	set, ok := MRG.Order3.Find("LEcuyer1")
	require.True(t, ok)
	require.Len(t, set.A, 3)
}

func TestMRGFindMissingReturnsFalse(t *testing.T) {
	_, ok := MRG.Order3.Find("does-not-exist")
	require.False(t, ok)
}

func TestYarnOrder3HasGenerator(t *testing.T) {
	require.NotZero(t, YARN.Order3.Gen)
}

func TestYarnOrder3AndMRGOrder3ShareCoefficients(t *testing.T) {
	yarnSet, ok := YARN.Order3.Find("LEcuyer1")
	require.True(t, ok)
	mrgSet, ok := MRG.Order3.Find("LEcuyer1")
	require.True(t, ok)
	require.Equal(t, mrgSet.A, yarnSet.A)
}

func TestLCG64Find(t *testing.T) {
	set, ok := LCG64.Find("LEcuyer1")
	require.True(t, ok)
	require.NotZero(t, set.A)
	require.Equal(t, uint64(1), set.B)
}

func TestCount128IncrementIsPopulated(t *testing.T) {
	require.NotZero(t, Count128.Increment.Hi)
	require.NotZero(t, Count128.Increment.Lo)
}

func TestCount128Find(t *testing.T) {
	set, ok := Count128.Find("Default")
	require.True(t, ok)
	require.NotZero(t, set.A)
}

func TestLagFibFindAllNamedPairs(t *testing.T) {
	names := []string{
		"r250", "lagfib2xor_521", "lagfib2xor_607", "lagfib2xor_1279",
		"lagfib2xor_2281", "lagfib2xor_3217", "lagfib2xor_4423",
		"lagfib2xor_9689", "lagfib2xor_19937",
	}
	for _, name := range names {
		set, ok := LagFib.Find(name)
		require.True(t, ok, name)
		require.Less(t, set.A, set.B, name)
	}
}

func TestMRGOrder5SplitSharesCoefficientsWithYarnOrder5Split(t *testing.T) {
	mrgSet, ok := MRG.Order5Split.Find("trng0")
	require.True(t, ok)
	yarnSet, ok := YARN.Order5Split.Find("trng0")
	require.True(t, ok)
	require.Equal(t, mrgSet.A, yarnSet.A)
}

func TestMRGOrder5HasLEcuyer1(t *testing.T) {
	set, ok := MRG.Order5.Find("LEcuyer1")
	require.True(t, ok)
	require.Equal(t, []int64{107374182, 0, 0, 0, 104480}, set.A)
	require.Equal(t, int64(2147483647), MRG.Order5.Modulus)
}

func TestYarnOrder5HasLEcuyer1AndGenerator(t *testing.T) {
	set, ok := YARN.Order5.Find("LEcuyer1")
	require.True(t, ok)
	require.Equal(t, []int64{107374182, 0, 0, 0, 104480}, set.A)
	require.NotZero(t, YARN.Order5.Gen)
	require.Equal(t, int64(2147483647), YARN.Order5.Modulus)
}

func TestYarnOrder5AndMRGOrder5ShareCoefficients(t *testing.T) {
	yarnSet, ok := YARN.Order5.Find("LEcuyer1")
	require.True(t, ok)
	mrgSet, ok := MRG.Order5.Find("LEcuyer1")
	require.True(t, ok)
	require.Equal(t, mrgSet.A, yarnSet.A)
}

func TestMRGOrder5IsDistinctFromOrder5Split(t *testing.T) {
	require.NotEqual(t, MRG.Order5.Modulus, MRG.Order5Split.Modulus)
}
