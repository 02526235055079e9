package jobmem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flopezo/treeCl/pkg/constants"
	"github.com/flopezo/treeCl/pkg/jobmem"
	"github.com/flopezo/treeCl/pkg/units"
)

func TestDefaultSizing(t *testing.T) {
	t.Parallel()

	s := jobmem.DefaultSizing()

	assert.InDelta(t, jobmem.DefaultMultiplier, s.Multiplier, 0)
	assert.Equal(t, uint64(jobmem.DefaultSpareMB), s.SpareMB)
	assert.InDelta(t, constants.Epsilon, s.Epsilon, 0)
}

func TestSizing_Request(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sizing     jobmem.Sizing
		requiredMB float64
		want       uint64
	}{
		{"defaults", jobmem.DefaultSizing(), 1000, 1456},
		{"rounds up", jobmem.Sizing{Multiplier: 1}, 10.1, 11},
		{"zero estimate", jobmem.DefaultSizing(), 0, 256},
		{"no margin", jobmem.Sizing{Multiplier: 1}, 512, 512},
		{"epsilon absorbs fraction", jobmem.Sizing{Multiplier: 1, Epsilon: 0.5}, 1000.3, 1000},
		{"small epsilon keeps fraction", jobmem.Sizing{Multiplier: 1, Epsilon: 1e-8}, 1000.3, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.sizing.Request(tt.requiredMB)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizing_RequestInvalid(t *testing.T) {
	t.Parallel()

	_, err := jobmem.DefaultSizing().Request(-1)
	require.ErrorIs(t, err, jobmem.ErrInvalidEstimate)

	_, err = jobmem.DefaultSizing().Request(math.NaN())
	require.ErrorIs(t, err, jobmem.ErrInvalidEstimate)

	_, err = jobmem.Sizing{Multiplier: 0.9}.Request(100)
	require.ErrorIs(t, err, jobmem.ErrInvalidMultiplier)

	_, err = jobmem.Sizing{Multiplier: 1, Epsilon: -1}.Request(100)
	require.ErrorIs(t, err, jobmem.ErrInvalidEpsilon)
}

func TestSizing_RequestOverflow(t *testing.T) {
	t.Parallel()

	_, err := jobmem.DefaultSizing().Request(1e30)
	require.ErrorIs(t, err, jobmem.ErrInvalidEstimate)

	// Fits before the spare is added, overflows after.
	near := jobmem.Sizing{Multiplier: 1, SpareMB: math.MaxUint64}
	_, err = near.Request(4096)
	require.ErrorIs(t, err, jobmem.ErrInvalidEstimate)
}

func TestSizing_RequestBytes(t *testing.T) {
	t.Parallel()

	got, err := jobmem.Sizing{Multiplier: 1, SpareMB: jobmem.DefaultSpareMB}.RequestBytes(units.GiB)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024+256), got)

	got, err = jobmem.Sizing{Multiplier: 1}.RequestBytes(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)

	got, err = jobmem.Sizing{Multiplier: 1}.RequestBytes(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<44), got, "largest byte count must not wrap to zero")
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  uint64
	}{
		{"1GiB", units.GiB},
		{"512MiB", 512 * units.MiB},
		{"800", 800 * units.MiB},
		{" 1.5 ", 3 * units.MiB / 2},
	}

	for _, tt := range tests {
		got, err := jobmem.ParseSize(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := jobmem.ParseSize("")
	require.ErrorIs(t, err, jobmem.ErrInvalidSize)

	_, err = jobmem.ParseSize("lots")
	require.ErrorIs(t, err, jobmem.ErrInvalidSize)
}

func TestFormatMB(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0 GiB", jobmem.FormatMB(1024))
	assert.Equal(t, "256 MiB", jobmem.FormatMB(256))
	assert.Equal(t, "16 EiB", jobmem.FormatMB(1<<44))
}
