// SPDX-License-Identifier: MIT

// Package substitution - Table: immutable symmetric A×A score storage.
//
// Purpose:
//   - Row-major flat buffer with the explicit index formula i*A + j.
//   - Validate shape and symmetry once, at construction; never afterwards.
//   - Public accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewTable: O(A²); Score/At: O(1); SelfMaximal: O(A).

package substitution

import "fmt"

// Matrix scores an ordered pair of symbols. Implementations must be pure
// and safe for concurrent use; an unknown symbol must yield an error
// matching ErrUnrecognizedSymbol rather than a default score.
type Matrix interface {
	Score(a, b byte) (int, error)
}

// Table is the concrete Matrix backed by a dense A×A score table.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	name  string
	alpha *Alphabet
	n     int   // alphabet size A
	data  []int // row-major, len n*n
}

var _ Matrix = (*Table)(nil)

// tableErrorf attaches the constructor name and coordinates to a sentinel.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// NewTable builds a Table named name over the alphabet symbols, where
// scores[i][j] is the score of aligning symbols[i] with symbols[j].
// The scores are copied; later changes to the caller's slices have no effect.
//
// Errors:
//   - ErrBadAlphabet from NewAlphabet.
//   - ErrBadShape when scores is not len(symbols)×len(symbols).
//   - ErrAsymmetry when scores[i][j] != scores[j][i].
func NewTable(name, symbols string, scores [][]int) (*Table, error) {
	alpha, err := NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}

	n := alpha.Len()
	if len(scores) != n {
		return nil, fmt.Errorf("NewTable %s: %d rows for %d symbols: %w", name, len(scores), n, ErrBadShape)
	}
	data := make([]int, n*n)
	for i, row := range scores {
		if len(row) != n {
			return nil, fmt.Errorf("NewTable %s: row %d has %d columns, want %d: %w", name, i, len(row), n, ErrBadShape)
		}
		copy(data[i*n:(i+1)*n], row)
	}

	// Only the upper triangle needs to be compared against the lower one.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if data[i*n+j] != data[j*n+i] {
				return nil, tableErrorf("NewTable", i, j, ErrAsymmetry)
			}
		}
	}

	return &Table{name: name, alpha: alpha, n: n, data: data}, nil
}

// Identity builds a match/mismatch scheme over symbols: every diagonal
// entry scores match and every off-diagonal entry scores mismatch.
// Typical use is a nucleotide scheme such as Identity("ACGT", 5, -4).
func Identity(symbols string, match, mismatch int) (*Table, error) {
	scores := make([][]int, len(symbols))
	for i := range scores {
		scores[i] = make([]int, len(symbols))
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}

	return NewTable(fmt.Sprintf("identity(%+d/%+d)", match, mismatch), symbols, scores)
}

// Score returns the similarity of aligning a with b. Lookup is
// case-insensitive. An unknown symbol yields *UnrecognizedSymbolError
// for the first offending argument.
func (t *Table) Score(a, b byte) (int, error) {
	i, err := t.alpha.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := t.alpha.Index(b)
	if err != nil {
		return 0, err
	}

	return t.data[i*t.n+j], nil
}

// At returns the score stored at row i, column j.
func (t *Table) At(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, tableErrorf("At", i, j, ErrOutOfRange)
	}

	return t.data[i*t.n+j], nil
}

// SelfMaximal reports whether Score(sym, sym) is the largest score in
// sym's row. When every symbol of a sequence is self-maximal, aligning the
// sequence with itself scores exactly the sum of its self scores.
func (t *Table) SelfMaximal(sym byte) (bool, error) {
	i, err := t.alpha.Index(sym)
	if err != nil {
		return false, err
	}

	row := t.data[i*t.n : (i+1)*t.n]
	for j, v := range row {
		if j != i && v > row[i] {
			return false, nil
		}
	}

	return true, nil
}

// Alphabet returns the table's alphabet.
func (t *Table) Alphabet() *Alphabet { return t.alpha }

// Name returns the human-readable table name, e.g. "BLOSUM62".
func (t *Table) Name() string { return t.name }

// Len returns the alphabet size A.
func (t *Table) Len() int { return t.n }
