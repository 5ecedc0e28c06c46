// Package uint128 provides the minimal 128-bit unsigned integer arithmetic
// needed by the count128 engine family: addition, multiplication modulo
// 2^128, shifts and the canonical text form. It is intentionally not a
// general-purpose bignum type.
package uint128

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/parastream/trng/trngerr"
)

// Uint128 is an unsigned 128-bit integer stored as (hi, lo) 64-bit limbs,
// hi holding the more significant bits.
type Uint128 struct {
	hi, lo uint64
}

// New builds a Uint128 from explicit high and low limbs.
func New(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }

// FromUint64 widens a uint64 into a Uint128.
func FromUint64(v uint64) Uint128 { return Uint128{lo: v} }

// Hi returns the most significant 64 bits.
func (u Uint128) Hi() uint64 { return u.hi }

// Lo returns the least significant 64 bits.
func (u Uint128) Lo() uint64 { return u.lo }

// Add returns u+v mod 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return Uint128{hi: hi, lo: lo}
}

// Sub returns u-v mod 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return Uint128{hi: hi, lo: lo}
}

// Mul returns u*v mod 2^128.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return Uint128{hi: hi, lo: lo}
}

// Lsh returns u<<n mod 2^128, n taken mod 128.
func (u Uint128) Lsh(n uint) Uint128 {
	n %= 128
	switch {
	case n == 0:
		return u
	case n < 64:
		return Uint128{hi: (u.hi << n) | (u.lo >> (64 - n)), lo: u.lo << n}
	default:
		return Uint128{hi: u.lo << (n - 64), lo: 0}
	}
}

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// IsOdd reports whether the least significant bit is set, the invariant
// required of a count128 increment.
func (u Uint128) IsOdd() bool { return u.lo&1 == 1 }

// Equal reports bitwise equality.
func (u Uint128) Equal(v Uint128) bool { return u.hi == v.hi && u.lo == v.lo }

// String renders u as a single plain decimal number, the canonical form
// used by the serializer: no "0x" prefix, no limb separator.
func (u Uint128) String() string {
	if u.IsZero() {
		return "0"
	}
	var digits [39]byte // ceil(log10(2^128)) = 39
	i := len(digits)
	hi, lo := u.hi, u.lo
	for hi != 0 || lo != 0 {
		var rem uint64
		hi, rem = hi/10, hi%10
		lo, rem = bits.Div64(rem, lo, 10)
		i--
		digits[i] = byte('0' + rem)
	}
	return string(digits[i:])
}

// Parse reads a 128-bit unsigned integer in decimal, or, if prefixed with
// "0x"/"0X" or a leading "0" followed by further digits, hexadecimal or
// octal respectively. Overflow past 128 bits is rejected.
func Parse(s string) (Uint128, error) {
	orig := s
	if s == "" {
		return Uint128{}, fmt.Errorf("%w: uint128: empty value", trngerr.ErrSerializationFailure)
	}
	base := uint64(10)
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base = 16
		s = s[2:]
	case len(s) > 1 && s[0] == '0':
		base = 8
		s = s[1:]
	}
	if s == "" {
		return Uint128{}, fmt.Errorf("%w: uint128: parse %q: no digits after prefix", trngerr.ErrSerializationFailure, orig)
	}
	var u Uint128
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			return Uint128{}, fmt.Errorf("%w: uint128: parse %q: invalid digit %q", trngerr.ErrSerializationFailure, orig, s[i])
		}
		var overflow bool
		u, overflow = mulAddDigit(u, base, d)
		if overflow {
			return Uint128{}, fmt.Errorf("%w: uint128: parse %q: overflows 128 bits", trngerr.ErrSerializationFailure, orig)
		}
	}
	return u, nil
}

func digitValue(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// mulAddDigit computes u*base+digit, reporting overflow past 128 bits.
func mulAddDigit(u Uint128, base, digit uint64) (Uint128, bool) {
	loHi, lo := bits.Mul64(u.lo, base)
	lo, carry := bits.Add64(lo, digit, 0)
	loHi += carry
	hiHi, hiLo := bits.Mul64(u.hi, base)
	if hiHi != 0 {
		return Uint128{}, true
	}
	hi, carry := bits.Add64(hiLo, loHi, 0)
	if carry != 0 {
		return Uint128{}, true
	}
	return Uint128{hi: hi, lo: lo}, false
}
