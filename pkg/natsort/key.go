package natsort

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrIncomparable is returned by strict comparison when two keys hold a
// number and a text run at the same position.
var ErrIncomparable = errors.New("incomparable natural sort keys")

// Key is the natural sort key of a string.
type Key []Token

// KeyOf splits s into alternating maximal runs of ASCII digits and other
// characters, in input order. The empty string yields an empty key.
//
// Scanning works on bytes: an ASCII digit never occurs inside a multi-byte
// UTF-8 sequence, so text runs always hold whole runes.
func KeyOf(s string) Key {
	if s == "" {
		return Key{}
	}

	key := make(Key, 0, TokenCount(s))

	for start := 0; start < len(s); {
		digit := isDigit(s[start])

		end := start + 1
		for end < len(s) && isDigit(s[end]) == digit {
			end++
		}

		if digit {
			key = append(key, Number(s[start:end]))
		} else {
			key = append(key, Text(s[start:end]))
		}

		start = end
	}

	return key
}

// TokenCount returns len(KeyOf(s)) without allocating the key.
func TokenCount(s string) int {
	if s == "" {
		return 0
	}

	runs := 1

	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != isDigit(s[i-1]) {
			runs++
		}
	}

	return runs
}

// String concatenates the raw runs; it reproduces the input of KeyOf exactly.
func (k Key) String() string {
	var sb strings.Builder

	for _, tok := range k {
		sb.WriteString(tok.Text)
	}

	return sb.String()
}

// Normalized concatenates the runs with numbers rendered as plain decimals,
// dropping leading zeros.
func (k Key) Normalized() string {
	var sb strings.Builder

	for _, tok := range k {
		sb.WriteString(tok.Digits())
	}

	return sb.String()
}

// Compare orders two keys token by token. A number sorts before a text run
// at the same position, and a key sorts before any longer key it prefixes.
func Compare(a, b Key) int {
	for i := range min(len(a), len(b)) {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// CompareStrict is Compare without the number/text tie-break: a kind
// mismatch at the same position returns an error wrapping ErrIncomparable.
func CompareStrict(a, b Key) (int, error) {
	for i := range min(len(a), len(b)) {
		if a[i].Kind != b[i].Kind {
			return 0, fmt.Errorf("%w: position %d: %s %q vs %s %q",
				ErrIncomparable, i, a[i].Kind, a[i].Text, b[i].Kind, b[i].Text)
		}

		if c := a[i].Compare(b[i]); c != 0 {
			return c, nil
		}
	}

	return cmp.Compare(len(a), len(b)), nil
}
