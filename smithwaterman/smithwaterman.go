package smithwaterman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/swalign/substitution"
)

// Smith–Waterman with Gotoh's affine gaps
//
// Description:
//
//	For every cell (i, j), 1 ≤ i ≤ len(a), 1 ≤ j ≤ len(b):
//	  F(i,j) = max(F(i-1,j) + gapExtend, H(i-1,j) + gapOpen)   gap in b (vertical)
//	  E(i,j) = max(E(i,j-1) + gapExtend, H(i,j-1) + gapOpen)   gap in a (horizontal)
//	  H(i,j) = max(H(i-1,j-1) + s(a_i, b_j), F(i,j), E(i,j), 0)
//	The result is max H over the whole sweep, not H(n,m).
//
// Algorithm Outline (rolling vectors):
//  1. Let m = len(b)+1. Allocate gap[m] (F) and score[m] (H).
//  2. Initialize gap[j] = −∞ (no gap can be extended yet) and score[j] = 0
//     (row 0 aligns a prefix against nothing).
//  3. For i = 1..n: e = −∞, diag = score[0] (= 0, column 0).
//     For j = 1..m-1:
//     h        = diag + s(a[i-1], b[j-1])
//     gap[j]   = max(gap[j] + gapExtend, score[j] + gapOpen)   score[j] is still H(i-1,j)
//     e        = max(e + gapExtend, score[j-1] + gapOpen)      score[j-1] is already H(i,j-1)
//     diag     = score[j]                                       H(i-1,j) becomes next diagonal
//     score[j] = max(max(h, gap[j]), max(e, 0))
//     best     = max(best, score[j])
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m), or O(min(n,m)) with WithShorterInner
//
// Errors:
//   - substitution.ErrUnrecognizedSymbol (wrapped with the offending positions)
//     as soon as the matrix rejects a visited pair. No partial score is returned.

// Aligner computes local alignment scores. It is immutable after New and
// safe for concurrent use: every call owns its scratch vectors.
type Aligner struct {
	gapOpen   float64
	gapExtend float64
	matrix    substitution.Matrix
	opts      Options
}

// New returns an Aligner that adds gapOpen when a gap starts and gapExtend
// for every further gap position. Both terms are added as-is, so costs are
// expressed as negative numbers. There are no default penalties.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrBadPenalty when a gap term is NaN or ±Inf.
func New(gapOpen, gapExtend float64, m substitution.Matrix, opts ...Option) (*Aligner, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !isFinite(gapOpen) || !isFinite(gapExtend) {
		return nil, fmt.Errorf("New(%v, %v): %w", gapOpen, gapExtend, ErrBadPenalty)
	}

	return &Aligner{
		gapOpen:   gapOpen,
		gapExtend: gapExtend,
		matrix:    m,
		opts:      gatherOptions(opts...),
	}, nil
}

// GapOpen returns the gap-opening term.
func (al *Aligner) GapOpen() float64 { return al.gapOpen }

// GapExtend returns the gap-extension term.
func (al *Aligner) GapExtend() float64 { return al.gapExtend }

// Matrix returns the substitution matrix used for scoring.
func (al *Aligner) Matrix() substitution.Matrix { return al.matrix }

// Align returns the best local alignment score of a against b.
// Both sequences are upper-cased (ASCII) before lookup. Empty input is legal
// and scores 0.
//
// Example:
//
//	al, _ := New(-8, 0, substitution.Blosum62())
//	s, err := al.Align("A", "a") // 4
func (al *Aligner) Align(a, b string) (float64, error) {
	var ws workspace

	return run(al, &ws, a, b)
}

// AlignBytes is Align for byte slices. The inputs are not modified.
func (al *Aligner) AlignBytes(a, b []byte) (float64, error) {
	var ws workspace

	return run(al, &ws, a, b)
}

// run normalizes a and b into ws and sweeps the score matrix.
func run[S ~string | ~[]byte](al *Aligner, ws *workspace, a, b S) (float64, error) {
	ws.a = appendUpper(ws.a[:0], a)
	ws.b = appendUpper(ws.b[:0], b)

	return al.sweep(ws)
}

// sweep runs the rolling-vector recurrence over the normalized ws.a, ws.b.
func (al *Aligner) sweep(ws *workspace) (float64, error) {
	outer, inner := ws.a, ws.b
	swapped := false
	if al.opts.ShorterInner && len(inner) > len(outer) {
		outer, inner, swapped = inner, outer, true
	}
	if len(outer) == 0 || len(inner) == 0 {
		return 0, nil
	}

	m := len(inner) + 1
	gap, score := ws.reset(m)
	open, ext := al.gapOpen, al.gapExtend

	var (
		best, h, e, diag float64
		s                int
		err              error
	)
	for i := 1; i <= len(outer); i++ {
		x := outer[i-1]
		e = math.Inf(-1)
		diag = score[0]
		for j := 1; j < m; j++ {
			y := inner[j-1]
			if swapped {
				s, err = al.matrix.Score(y, x)
			} else {
				s, err = al.matrix.Score(x, y)
			}
			if err != nil {
				ai, bj := i-1, j-1
				if swapped {
					ai, bj = bj, ai
				}

				return 0, fmt.Errorf("smithwaterman: align a[%d] with b[%d]: %w", ai, bj, err)
			}

			h = diag + float64(s)
			gap[j] = greater(gap[j]+ext, score[j]+open)
			e = greater(e+ext, score[j-1]+open)
			diag = score[j]
			score[j] = max(max(h, gap[j]), max(e, 0))
			if score[j] > best {
				best = score[j]
			}
		}
	}

	return best, nil
}

// workspace is the per-call scratch state. It must never be shared by two
// in-flight sweeps; AlignPairs keeps one per worker.
type workspace struct {
	a, b  []byte    // upper-cased sequences
	gap   []float64 // F: best score ending with a gap in b, row i-1 → i
	score []float64 // H: best local score ending at (i, j), row i-1 → i
}

// reset sizes both vectors to m, reusing capacity, and applies the row-0
// boundary: gap = −∞, score = 0.
func (w *workspace) reset(m int) (gap, score []float64) {
	if cap(w.gap) < m {
		w.gap = make([]float64, m)
		w.score = make([]float64, m)
	}
	w.gap, w.score = w.gap[:m], w.score[:m]

	negInf := math.Inf(-1)
	for j := range w.gap {
		w.gap[j] = negInf
		w.score[j] = 0
	}

	return w.gap, w.score
}

// appendUpper appends src to dst with ASCII letters upper-cased.
// Non-ASCII bytes are kept so the matrix can reject them.
func appendUpper[S ~string | ~[]byte](dst []byte, src S) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}

	return dst
}

// greater returns the larger of x and y, preferring y on ties.
func greater(x, y float64) float64 {
	if x > y {
		return x
	}

	return y
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
