package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flopezo/treeCl/pkg/analysis"
)

func TestAll_CanonicalOrder(t *testing.T) {
	t.Parallel()

	want := []analysis.Method{"tlr", "lr", "l", "r", "ml", "full", "nj", "bionj", "bionj+", "lk"}
	assert.Equal(t, want, analysis.All())
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := analysis.All()
	first[0] = "bogus"

	assert.Equal(t, analysis.TLR, analysis.All()[0])
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    analysis.Method
		wantErr bool
	}{
		{"nj", analysis.NJ, false},
		{"  BIONJ+ ", analysis.BIONJPlus, false},
		{"Full", analysis.Full, false},
		{"raxml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := analysis.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, analysis.ErrUnknownMethod)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethod_Description(t *testing.T) {
	t.Parallel()

	for _, m := range analysis.All() {
		assert.NotEmpty(t, m.Description(), "method %s", m)
		assert.True(t, m.Valid())
	}

	assert.Empty(t, analysis.Method("phyml").Description())
	assert.False(t, analysis.Method("phyml").Valid())
}
