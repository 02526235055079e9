// Package constants holds toolkit-wide numeric and environment settings.
package constants

import (
	"math"
	"os"
)

// Version is the toolkit release.
const Version = "1.0.0"

// Epsilon is the tolerance used for floating-point comparisons.
const Epsilon = 1e-8

// DefaultTmpDir is used when $TMPDIR is unset.
const DefaultTmpDir = "/tmp"

// tmpDirEnv names the environment variable holding the scratch directory.
const tmpDirEnv = "TMPDIR"

// Signed infinities.
var (
	PosInf = math.Inf(1)
	NegInf = math.Inf(-1)
)

// TmpDir returns $TMPDIR, or DefaultTmpDir when it is unset or empty.
func TmpDir() string {
	if dir := os.Getenv(tmpDirEnv); dir != "" {
		return dir
	}

	return DefaultTmpDir
}

// NearlyEqual reports whether a and b differ by at most Epsilon.
// Infinities of the same sign are equal.
func NearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= Epsilon
}
