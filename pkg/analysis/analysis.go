// Package analysis enumerates the tree-inference analysis methods the
// toolkit can schedule.
package analysis

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownMethod is returned when a method name is not supported.
var ErrUnknownMethod = errors.New("unknown analysis method")

// Method names a tree-inference analysis.
type Method string

// Supported methods.
const (
	TLR        Method = "tlr"
	LR         Method = "lr"
	L          Method = "l"
	R          Method = "r"
	ML         Method = "ml"
	Full       Method = "full"
	NJ         Method = "nj"
	BIONJ      Method = "bionj"
	BIONJPlus  Method = "bionj+"
	Likelihood Method = "lk"
)

var methods = []Method{TLR, LR, L, R, ML, Full, NJ, BIONJ, BIONJPlus, Likelihood}

var descriptions = map[Method]string{
	TLR:        "ML search optimising topology, branch lengths and rates",
	LR:         "optimise branch lengths and rates on a fixed topology",
	L:          "optimise branch lengths on a fixed topology",
	R:          "optimise rate parameters on a fixed topology",
	ML:         "maximum likelihood tree search",
	Full:       "full maximum likelihood search with all parameters free",
	NJ:         "neighbour joining",
	BIONJ:      "BIONJ distance tree",
	BIONJPlus:  "BIONJ tree refined by ML optimisation",
	Likelihood: "likelihood score of a fixed tree",
}

// All returns the supported methods in their canonical order.
func All() []Method {
	return slices.Clone(methods)
}

// Parse normalizes s and returns the matching method.
func Parse(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}

	return m, nil
}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return slices.Contains(methods, m)
}

// String returns the method name.
func (m Method) String() string {
	return string(m)
}

// Description returns a one-line summary of the method, or "" when unknown.
func (m Method) Description() string {
	return descriptions[m]
}
