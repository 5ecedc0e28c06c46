// Package serialize implements the canonical text grammar shared by every
// engine: "(v v ... v)" for a parameter or status block and "[name P S]"
// for a full engine, space-delimited, with leading whitespace tolerated
// before the opening bracket. Each engine type implements
// encoding.TextMarshaler/TextUnmarshaler directly; this package supplies
// the scanning primitives they build on (the Go counterpart of the
// source's utility::delim/ignore_spaces stream manipulators) plus thin
// io.Writer/io.Reader helpers.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parastream/trng/trngerr"
	"github.com/parastream/trng/uint128"
)

// Print writes m's canonical text form to w.
func Print(w io.Writer, m interface {
	MarshalText() ([]byte, error)
}) error {
	b, err := m.MarshalText()
	if err != nil {
		return fmt.Errorf("serialize: print: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// Parse reads one canonical text form from r and feeds it to m. If no
// balanced "[...]" token can be read, Parse returns an error without
// calling m.UnmarshalText. Otherwise the token is handed to
// m.UnmarshalText, so the partial-read-leaves-target-unchanged invariant
// for a malformed token is the responsibility of each engine's
// UnmarshalText, not of Parse itself.
func Parse(r io.Reader, m interface {
	UnmarshalText([]byte) error
}) error {
	br := bufio.NewReader(r)
	tok, err := scanBracketed(br, '[', ']')
	if err != nil {
		return fmt.Errorf("serialize: parse: %w", err)
	}
	return m.UnmarshalText(tok)
}

// scanBracketed skips leading whitespace, then reads a balanced open/close
// delimited token (honouring nested '(' ')' inside), returning the full
// token including its outer delimiters.
func scanBracketed(br *bufio.Reader, open, closeb byte) ([]byte, error) {
	if err := skipSpaces(br); err != nil {
		return nil, err
	}
	b, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", trngerr.ErrSerializationFailure, err)
	}
	if b != open {
		return nil, fmt.Errorf("%w: expected %q, got %q", trngerr.ErrSerializationFailure, open, b)
	}
	var buf []byte
	buf = append(buf, b)
	depth := 1
	for depth > 0 {
		b, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: unterminated token: %v", trngerr.ErrSerializationFailure, err)
		}
		buf = append(buf, b)
		switch b {
		case open:
			depth++
		case closeb:
			depth--
		}
	}
	return buf, nil
}

func skipSpaces(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: unexpected eof", trngerr.ErrSerializationFailure)
			}
			return err
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return br.UnreadByte()
		}
	}
}

// Scanner is a small hand-rolled parser over the "[name (a a a) (r r r)]"
// grammar, used by each engine's UnmarshalText. It operates purely on an
// in-memory byte slice: engines receive their whole token from Parse.
type Scanner struct {
	s    string
	pos  int
	base int
}

// NewScanner wraps raw bytes for field-by-field scanning, in decimal mode.
func NewScanner(b []byte) *Scanner { return &Scanner{s: string(b), base: 10} }

// SetBase switches the stream's numeric mode for subsequent Int64/Uint64/
// Ints/Uints calls: 10 (the default) for decimal, 16 for hexadecimal, 8 for
// octal. The Go counterpart of the source's ios::dec/hex/oct manipulators.
func (sc *Scanner) SetBase(base int) { sc.base = base }

func (sc *Scanner) skipSpaces() {
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
func isHexDigit(b byte) bool {
	return isDecDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (sc *Scanner) digitAllowed() func(byte) bool {
	switch sc.base {
	case 16:
		return isHexDigit
	case 8:
		return isOctDigit
	default:
		return isDecDigit
	}
}

// skipBasePrefix consumes a leading "0x"/"0X" when the stream is in
// hexadecimal mode; the digits themselves carry no other base marker.
func (sc *Scanner) skipBasePrefix() {
	if sc.base == 16 && sc.pos+1 < len(sc.s) && sc.s[sc.pos] == '0' && (sc.s[sc.pos+1] == 'x' || sc.s[sc.pos+1] == 'X') {
		sc.pos += 2
	}
}

// Expect consumes the exact byte b, skipping leading spaces first.
func (sc *Scanner) Expect(b byte) error {
	sc.skipSpaces()
	if sc.pos >= len(sc.s) || sc.s[sc.pos] != b {
		return fmt.Errorf("%w: expected %q at offset %d", trngerr.ErrSerializationFailure, b, sc.pos)
	}
	sc.pos++
	return nil
}

// ExpectLiteral consumes the exact string s, skipping leading spaces first.
func (sc *Scanner) ExpectLiteral(s string) error {
	sc.skipSpaces()
	if !strings.HasPrefix(sc.s[sc.pos:], s) {
		return fmt.Errorf("%w: expected %q at offset %d", trngerr.ErrSerializationFailure, s, sc.pos)
	}
	sc.pos += len(s)
	return nil
}

// Int64 scans a signed integer, decimal unless the stream is in hex/oct
// mode (see SetBase).
func (sc *Scanner) Int64() (int64, error) {
	sc.skipSpaces()
	start := sc.pos
	neg := false
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == '-' || sc.s[sc.pos] == '+') {
		neg = sc.s[sc.pos] == '-'
		sc.pos++
	}
	sc.skipBasePrefix()
	digitsStart := sc.pos
	allowed := sc.digitAllowed()
	for sc.pos < len(sc.s) && allowed(sc.s[sc.pos]) {
		sc.pos++
	}
	if sc.pos == digitsStart {
		return 0, fmt.Errorf("%w: expected integer at offset %d", trngerr.ErrSerializationFailure, start)
	}
	u, err := strconv.ParseUint(sc.s[digitsStart:sc.pos], sc.base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", trngerr.ErrSerializationFailure, err)
	}
	v := int64(u)
	if neg {
		v = -v
	}
	return v, nil
}

// Uint64 scans an unsigned integer, decimal unless the stream is in
// hex/oct mode (see SetBase).
func (sc *Scanner) Uint64() (uint64, error) {
	sc.skipSpaces()
	start := sc.pos
	sc.skipBasePrefix()
	digitsStart := sc.pos
	allowed := sc.digitAllowed()
	for sc.pos < len(sc.s) && allowed(sc.s[sc.pos]) {
		sc.pos++
	}
	if sc.pos == digitsStart {
		return 0, fmt.Errorf("%w: expected unsigned integer at offset %d", trngerr.ErrSerializationFailure, start)
	}
	v, err := strconv.ParseUint(sc.s[digitsStart:sc.pos], sc.base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", trngerr.ErrSerializationFailure, err)
	}
	return v, nil
}

// Uint128 scans a 128-bit unsigned integer. Independent of the stream's
// SetBase mode, it always recognizes an optional "0x"/"0X" prefix (hex) or
// leading "0" followed by further digits (octal), defaulting to decimal,
// and rejects values that overflow 128 bits.
func (sc *Scanner) Uint128() (uint128.Uint128, error) {
	sc.skipSpaces()
	start := sc.pos
	for sc.pos < len(sc.s) && (isHexDigit(sc.s[sc.pos]) || sc.s[sc.pos] == 'x' || sc.s[sc.pos] == 'X') {
		sc.pos++
	}
	if sc.pos == start {
		return uint128.Uint128{}, fmt.Errorf("%w: expected 128-bit integer at offset %d", trngerr.ErrSerializationFailure, start)
	}
	v, err := uint128.Parse(sc.s[start:sc.pos])
	if err != nil {
		return uint128.Uint128{}, fmt.Errorf("%w: %v", trngerr.ErrSerializationFailure, err)
	}
	return v, nil
}

// Done reports whether every non-space byte has been consumed.
func (sc *Scanner) Done() bool {
	sc.skipSpaces()
	return sc.pos >= len(sc.s)
}

// Ints scans a "(v v ... v)" block of exactly n signed integers.
func (sc *Scanner) Ints(n int) ([]int64, error) {
	if err := sc.Expect('('); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := sc.Int64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if err := sc.Expect(')'); err != nil {
		return nil, err
	}
	return out, nil
}

// Uints scans a "(v v ... v)" block of exactly n unsigned integers.
func (sc *Scanner) Uints(n int) ([]uint64, error) {
	if err := sc.Expect('('); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		v, err := sc.Uint64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if err := sc.Expect(')'); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatInts renders "(v v v)" for the given values.
func FormatInts(vs []int64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	sb.WriteByte(')')
	return sb.String()
}

// FormatUints renders "(v v v)" for the given unsigned values.
func FormatUints(vs []uint64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	sb.WriteByte(')')
	return sb.String()
}
