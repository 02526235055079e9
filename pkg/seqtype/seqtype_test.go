package seqtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flopezo/treeCl/pkg/seqtype"
)

func TestACGTProportion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"empty", "", 0},
		{"gaps only", "--??..", 0},
		{"pure dna", "ACGTACGT", 1},
		{"lower case", "acgt", 1},
		{"gapped dna", "AC-GT\n", 1},
		{"half", "ACNN", 0.5},
		{"protein", "MKVLAAGIV", 3.0 / 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, seqtype.ACGTProportion(tt.seq), 1e-12)
		})
	}
}

func TestIsDNA_Threshold(t *testing.T) {
	t.Parallel()

	// Three of four residues: exactly on the default threshold.
	assert.True(t, seqtype.IsDNA("ACGN", seqtype.DefaultDNAThreshold))
	assert.False(t, seqtype.IsDNA("ACNN", seqtype.DefaultDNAThreshold))
	assert.False(t, seqtype.IsDNA("", seqtype.DefaultDNAThreshold))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, seqtype.DNA, seqtype.Classify("ATTGCCA", seqtype.DefaultDNAThreshold))
	assert.Equal(t, seqtype.Protein, seqtype.Classify("MEEPQSDPSV", seqtype.DefaultDNAThreshold))
}

func TestResidues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, seqtype.Residues(""))
	assert.Equal(t, 0, seqtype.Residues("--..??"))
	assert.Equal(t, 4, seqtype.Residues("AC-G T"))
	assert.Equal(t, 3, seqtype.Residues("MéK"))
}
