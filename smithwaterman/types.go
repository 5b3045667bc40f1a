package smithwaterman

import "errors"

var (
	// ErrNilMatrix indicates New was called without a substitution matrix.
	ErrNilMatrix = errors.New("smithwaterman: substitution matrix is nil")

	// ErrBadPenalty indicates a gap term is NaN or ±Inf.
	ErrBadPenalty = errors.New("smithwaterman: gap penalties must be finite")
)

// Pair is one unit of work for AlignPairs.
type Pair struct {
	A, B string
}
