// Package smithwaterman computes optimal local alignment scores between two
// symbol sequences with the Smith–Waterman algorithm and Gotoh's affine-gap
// recurrences, in linear memory.
//
// 🚀 What is Smith–Waterman?
//
//	It finds the best-scoring alignment between any substring of one
//	sequence and any substring of another. Running scores that drop below
//	zero restart at zero, so an alignment may begin anywhere.
//	It is the reference method for:
//	  • protein homology search
//	  • finding conserved domains inside longer sequences
//	  • scoring candidate hits from faster seed-and-extend tools
//
// ✨ Key features:
//   - affine gaps: separate gap-opening and gap-extension terms
//   - rolling vectors: O(len(b)) memory, or O(min(n,m)) with WithShorterInner
//   - pluggable scoring: any substitution.Matrix (BLOSUM62, identity, custom)
//   - batch mode: AlignPairs scores many pairs on a worker pool, one private
//     scratch workspace per worker
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/swalign/smithwaterman"
//	  "github.com/katalvlaran/swalign/substitution"
//	)
//
//	al, err := smithwaterman.New(-11, -1, substitution.Blosum62())
//	if err != nil { ... }
//	score, err := al.Align("HEAGAWGHEE", "PAWHEAE") // 17
//
// Gap terms are added as-is: pass negative values to penalize gaps.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(M), or O(min(N,M)) with WithShorterInner
//
// Only the score is computed; no alignment path is reconstructed.
package smithwaterman
