// Package natsort provides natural ordering of strings with embedded numbers,
// so that "item2" sorts before "item10".
//
// A string is split into a Key: alternating maximal runs of ASCII digits and
// non-digits. Digit runs compare by integer value, of any length, and text
// runs compare bytewise.
package natsort

import (
	"cmp"
	"strconv"
	"strings"
)

// Kind tags a Token as a numeric run or a text run.
type Kind uint8

const (
	// KindNumber is a maximal run of ASCII digits.
	KindNumber Kind = iota
	// KindText is a maximal run of non-digit characters.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one run of a Key. Text always holds the run exactly as it appeared
// in the input, leading zeros included.
type Token struct {
	Text string
	Kind Kind
}

// Number returns a numeric token for the given digit run.
func Number(digits string) Token {
	return Token{Kind: KindNumber, Text: digits}
}

// Text returns a text token.
func Text(s string) Token {
	return Token{Kind: KindText, Text: s}
}

// Digits returns the decimal value of a numeric token without leading zeros.
// A run of zeros yields "0". Text tokens are returned unchanged.
func (t Token) Digits() string {
	if t.Kind != KindNumber {
		return t.Text
	}

	trimmed := strings.TrimLeft(t.Text, "0")
	if trimmed == "" && t.Text != "" {
		return "0"
	}

	return trimmed
}

// Uint64 returns the value of a numeric token. The boolean is false for text
// tokens and for values that overflow uint64.
func (t Token) Uint64() (uint64, bool) {
	if t.Kind != KindNumber {
		return 0, false
	}

	value, err := strconv.ParseUint(t.Digits(), 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// String returns the raw run.
func (t Token) String() string {
	return t.Text
}

// Compare orders two tokens. Tokens of the same kind compare by value;
// numbers sort before text otherwise.
func (t Token) Compare(other Token) int {
	if t.Kind != other.Kind {
		return cmp.Compare(t.Kind, other.Kind)
	}

	if t.Kind == KindNumber {
		return compareDigits(t.Digits(), other.Digits())
	}

	return strings.Compare(t.Text, other.Text)
}

// compareDigits compares two decimal strings without leading zeros.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}

	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
