// Package seqtype guesses whether a sequence is nucleotide or amino acid data
// from its ACGT content.
package seqtype

import "unicode"

// DefaultDNAThreshold is the proportion of ACGT residues needed to call a
// sequence DNA.
const DefaultDNAThreshold = 0.75

// Type is the inferred alphabet of a sequence.
type Type string

// Sequence types.
const (
	DNA     Type = "dna"
	Protein Type = "protein"
)

// ACGTProportion returns the fraction of residues in seq that are A, C, G
// or T, ignoring case. Gaps ('-', '.', '?') and whitespace are not residues.
// A sequence without residues yields 0.
func ACGTProportion(seq string) float64 {
	residues, acgt := count(seq)
	if residues == 0 {
		return 0
	}

	return float64(acgt) / float64(residues)
}

// Residues returns the number of residues in seq, gaps and whitespace excluded.
func Residues(seq string) int {
	residues, _ := count(seq)

	return residues
}

// IsDNA reports whether seq reaches threshold.
func IsDNA(seq string, threshold float64) bool {
	return ACGTProportion(seq) >= threshold
}

// Classify returns DNA or Protein for seq.
func Classify(seq string, threshold float64) Type {
	if IsDNA(seq, threshold) {
		return DNA
	}

	return Protein
}

func isGap(r rune) bool {
	return r == '-' || r == '.' || r == '?'
}

func count(seq string) (residues, acgt int) {
	for _, r := range seq {
		if isGap(r) || unicode.IsSpace(r) {
			continue
		}

		residues++

		switch unicode.ToUpper(r) {
		case 'A', 'C', 'G', 'T':
			acgt++
		}
	}

	return residues, acgt
}
