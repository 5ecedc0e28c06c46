package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt64Decimal(t *testing.T) {
	sc := NewScanner([]byte("-42 7"))
	v, err := sc.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)
	v, err = sc.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestUint64Decimal(t *testing.T) {
	sc := NewScanner([]byte("12345"))
	v, err := sc.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(12345), v)
}

func TestSetBaseHex(t *testing.T) {
	sc := NewScanner([]byte("0x1F ff"))
	sc.SetBase(16)
	v, err := sc.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(31), v)
	v, err = sc.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(255), v)
}

func TestSetBaseOctal(t *testing.T) {
	sc := NewScanner([]byte("17"))
	sc.SetBase(8)
	v, err := sc.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(15), v)
}

func TestUint64DefaultsToDecimalAfterReset(t *testing.T) {
	sc := NewScanner([]byte("10"))
	sc.SetBase(16)
	sc.SetBase(10)
	v, err := sc.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(10), v)
}

func TestUint128ScansDecimalByDefault(t *testing.T) {
	sc := NewScanner([]byte("123456789012345678901234567890"))
	v, err := sc.Uint128()
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", v.String())
}

func TestUint128ScansHexPrefixRegardlessOfStreamBase(t *testing.T) {
	sc := NewScanner([]byte("0xFF"))
	v, err := sc.Uint128()
	require.NoError(t, err)
	require.Equal(t, "255", v.String())
}

func TestUint128RejectsOverflow(t *testing.T) {
	sc := NewScanner([]byte("999999999999999999999999999999999999999999"))
	_, err := sc.Uint128()
	require.Error(t, err)
}

func TestIntsScansBlock(t *testing.T) {
	sc := NewScanner([]byte("(1 -2 3)"))
	vs, err := sc.Ints(3)
	require.NoError(t, err)
	require.Equal(t, []int64{1, -2, 3}, vs)
}

func TestUintsScansBlock(t *testing.T) {
	sc := NewScanner([]byte("(1 2 3)"))
	vs, err := sc.Uints(3)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, vs)
}

func TestFormatIntsRoundTripsThroughInts(t *testing.T) {
	s := FormatInts([]int64{-1, 0, 99})
	sc := NewScanner([]byte(s))
	vs, err := sc.Ints(3)
	require.NoError(t, err)
	require.Equal(t, []int64{-1, 0, 99}, vs)
}
