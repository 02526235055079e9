// Package jobmem sizes LSF memory requests for PhyML jobs from PhyML's own
// memory estimate.
package jobmem

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/flopezo/treeCl/pkg/constants"
	"github.com/flopezo/treeCl/pkg/units"
)

// Defaults for the request margin.
const (
	// DefaultMultiplier adds 20% headroom to the PhyML estimate.
	DefaultMultiplier = 1.2
	// DefaultSpareMB is added to every job on top of the scaled estimate.
	DefaultSpareMB = 256
)

// maxRequest is 2^64 as a float; scaled values at or above it do not fit.
const maxRequest = float64(math.MaxUint64)

// Sentinel errors.
var (
	ErrInvalidEstimate   = errors.New("memory estimate must be a non-negative number")
	ErrInvalidMultiplier = errors.New("memory multiplier must be at least 1")
	ErrInvalidEpsilon    = errors.New("rounding epsilon must be a non-negative number")
	ErrInvalidSize       = errors.New("invalid memory size")
)

// Sizing holds the margin applied to PhyML estimates.
type Sizing struct {
	// Multiplier scales the estimate; it must be at least 1.
	Multiplier float64
	// SpareMB is added after scaling.
	SpareMB uint64
	// Epsilon is subtracted before rounding up, so float noise such as
	// 1000*1.2 = 1200.0000001 does not add a MiB.
	Epsilon float64
}

// DefaultSizing returns the toolkit defaults.
func DefaultSizing() Sizing {
	return Sizing{
		Multiplier: DefaultMultiplier,
		SpareMB:    DefaultSpareMB,
		Epsilon:    constants.Epsilon,
	}
}

// Request returns the memory to request, in MiB, for a job whose PhyML
// estimate is requiredMB: ceil(requiredMB*Multiplier - Epsilon) + SpareMB.
// A request that does not fit in a uint64 is rejected.
func (s Sizing) Request(requiredMB float64) (uint64, error) {
	if math.IsNaN(requiredMB) || math.IsInf(requiredMB, 0) || requiredMB < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEstimate, requiredMB)
	}

	if math.IsNaN(s.Multiplier) || math.IsInf(s.Multiplier, 0) || s.Multiplier < 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMultiplier, s.Multiplier)
	}

	if math.IsNaN(s.Epsilon) || math.IsInf(s.Epsilon, 0) || s.Epsilon < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEpsilon, s.Epsilon)
	}

	scaled := math.Max(math.Ceil(requiredMB*s.Multiplier-s.Epsilon), 0)
	if scaled >= maxRequest {
		return 0, fmt.Errorf("%w: request for %v MiB overflows", ErrInvalidEstimate, requiredMB)
	}

	mb := uint64(scaled)
	if mb > math.MaxUint64-s.SpareMB {
		return 0, fmt.Errorf("%w: request for %v MiB plus %d spare overflows", ErrInvalidEstimate, requiredMB, s.SpareMB)
	}

	return mb + s.SpareMB, nil
}

// RequestBytes is Request on a byte count, taken as fractional MiB.
func (s Sizing) RequestBytes(requiredBytes uint64) (uint64, error) {
	return s.Request(float64(requiredBytes) / units.MiB)
}

// ParseSize parses a human-readable size such as "800MB" or "1.5GiB" into
// bytes. A bare number is taken as MiB, matching PhyML's own reports.
func ParseSize(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSize)
	}

	if isPlainNumber(trimmed) {
		trimmed += "MiB"
	}

	size, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSize, s, err)
	}

	return size, nil
}

// FormatMB renders a MiB count as IEC text, e.g. "1.6 GiB". Counts whose
// byte size exceeds a uint64 are still rendered correctly.
func FormatMB(mb uint64) string {
	bytes := new(big.Int).Mul(new(big.Int).SetUint64(mb), big.NewInt(units.MiB))

	return humanize.BigIBytes(bytes)
}

func isPlainNumber(s string) bool {
	dot := false

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}

	return true
}
