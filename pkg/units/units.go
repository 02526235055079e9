// Package units provides binary size unit multipliers (1024-based) used when
// sizing cluster-job memory requests.
package units

// Binary size multipliers.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// BytesToMiBCeil converts a byte count to MiB, rounding up to a whole MiB.
func BytesToMiBCeil(bytes uint64) uint64 {
	mib := bytes / MiB
	if bytes%MiB != 0 {
		mib++
	}

	return mib
}
