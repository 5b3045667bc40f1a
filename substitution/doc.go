// SPDX-License-Identifier: MIT

// Package substitution provides symbol-pair similarity scoring for sequence
// alignment: alphabets with dense symbol→index lookup, immutable symmetric
// score tables, and the built-in BLOSUM62 amino-acid matrix.
//
// What is a substitution matrix?
//
//	A table of pairwise similarity scores between alphabet symbols. Aligning
//	two conservative residues (e.g. I↔V) earns a positive score, aligning
//	dissimilar residues earns a negative one.
//
// Key features:
//   - Matrix interface: Score(a, b) → int, so alignment engines stay
//     polymorphic over scoring schemes (BLOSUM, PAM, nucleotide, custom).
//   - Alphabet: a [256]int16 lookup table, case-insensitive, built once.
//     An unknown symbol is a single table miss and a typed error, never a
//     silent default score.
//   - Table: validated at construction (square, symmetric), deep-copied,
//     read-only afterwards and safe for concurrent use.
//
// Usage:
//
//	m := substitution.Blosum62()
//	s, err := m.Score('W', 'y') // 2
//	if errors.Is(err, substitution.ErrUnrecognizedSymbol) {
//	  // sanitize input
//	}
//
//	dna, _ := substitution.Identity("ACGT", 5, -4)
//
// Complexity:
//   - Score: O(1) time, no allocations.
//   - NewTable: O(A²) time and memory for an alphabet of size A.
package substitution
