// Package swalign scores local alignments of protein sequences with the
// Smith–Waterman algorithm and Gotoh's affine gap penalties.
//
// 🚀 What is in swalign?
//
//	A small, dependency-light toolkit:
//		• substitution:  alphabets, symmetric score tables, built-in BLOSUM62
//		• smithwaterman: linear-memory Smith–Waterman/Gotoh scoring, batch mode
//		• cmd/swalign:   a FASTA-in, scores-out command-line driver
//
// ✨ Why swalign?
//
//   - Score-only – no traceback, O(min(N,M)) memory available
//   - Pluggable scoring – any substitution.Matrix works with the engine
//   - Strict input – unknown residues fail loudly, never score silently
//   - Concurrency-safe – an Aligner is immutable; scratch space is per call
//
// Quick example:
//
//	al, _ := smithwaterman.New(-11, -1, substitution.Blosum62())
//	score, err := al.Align("HEAGAWGHEE", "PAWHEAE") // 17
//
//	go install github.com/katalvlaran/swalign/cmd/swalign@latest
package swalign
