// SPDX-License-Identifier: MIT

// Package substitution - Alphabet: dense symbol → index mapping.
//
// Purpose:
//   - Map every recognized symbol to a dense index in [0, A).
//   - Fold ASCII case once at construction so lookups stay a single load.
//   - Turn "unknown symbol" into one table-miss check.
//
// Complexity quicksheet:
//   - NewAlphabet: O(A); Index/Contains: O(1); Symbols/Len: O(1).

package substitution

import "fmt"

// noIndex marks a byte that is not part of the alphabet.
const noIndex int16 = -1

// Alphabet is an immutable, case-insensitive symbol set with a dense index.
// The zero value is not usable; build one with NewAlphabet.
type Alphabet struct {
	symbols string     // canonical (upper-case) symbols in index order
	index   [256]int16 // byte → index, noIndex on miss
}

// NewAlphabet builds an alphabet from symbols, in order: symbols[k] gets
// index k. Letters are folded to upper case, so "acgt" and "ACGT" describe
// the same alphabet and both cases of a letter resolve to the same index.
//
// Errors:
//   - ErrBadAlphabet when symbols is empty, contains a non-printable or
//     non-ASCII byte, or repeats a symbol (after case folding).
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("NewAlphabet: empty symbol set: %w", ErrBadAlphabet)
	}

	a := &Alphabet{}
	for i := range a.index {
		a.index[i] = noIndex
	}

	canon := make([]byte, len(symbols))
	for k := 0; k < len(symbols); k++ {
		c := symbols[k]
		if c <= ' ' || c > '~' {
			return nil, fmt.Errorf("NewAlphabet: symbol %q at %d: %w", rune(c), k, ErrBadAlphabet)
		}
		up := upper(c)
		if a.index[up] != noIndex {
			return nil, fmt.Errorf("NewAlphabet: duplicate symbol %q: %w", rune(up), ErrBadAlphabet)
		}
		a.index[up] = int16(k)
		a.index[lower(up)] = int16(k)
		canon[k] = up
	}
	a.symbols = string(canon)

	return a, nil
}

// Index returns the dense index of sym, folding case.
// It returns *UnrecognizedSymbolError when sym is not in the alphabet.
func (a *Alphabet) Index(sym byte) (int, error) {
	idx := a.index[sym]
	if idx == noIndex {
		return 0, &UnrecognizedSymbolError{Symbol: sym}
	}

	return int(idx), nil
}

// Contains reports whether sym (in either case) belongs to the alphabet.
func (a *Alphabet) Contains(sym byte) bool {
	return a.index[sym] != noIndex
}

// Len returns the alphabet size A.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the canonical upper-case symbols in index order.
func (a *Alphabet) Symbols() string { return a.symbols }

// upper folds an ASCII lower-case letter to upper case; other bytes pass through.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// lower folds an ASCII upper-case letter to lower case; other bytes pass through.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
