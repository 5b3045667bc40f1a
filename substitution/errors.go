// SPDX-License-Identifier: MIT
// Package substitution: sentinel error set.
// Every message is prefixed with "substitution: ..." for easy grepping.
// Callers match with errors.Is; context is attached with fmt.Errorf("...: %w").

package substitution

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedSymbol is matched by every *UnrecognizedSymbolError.
	ErrUnrecognizedSymbol = errors.New("substitution: unrecognized symbol")

	// ErrBadAlphabet indicates an empty alphabet, a duplicate symbol
	// (case-insensitive) or a non-ASCII symbol.
	ErrBadAlphabet = errors.New("substitution: invalid alphabet")

	// ErrBadShape indicates the score rows do not form an A×A table
	// for an alphabet of size A.
	ErrBadShape = errors.New("substitution: invalid table shape")

	// ErrAsymmetry indicates scores[i][j] != scores[j][i] for some i, j.
	ErrAsymmetry = errors.New("substitution: table is not symmetric")

	// ErrOutOfRange indicates a row or column index outside [0, A).
	ErrOutOfRange = errors.New("substitution: index out of range")
)

// UnrecognizedSymbolError reports a symbol that is not part of an alphabet.
type UnrecognizedSymbolError struct {
	Symbol byte
}

// Error implements error.
func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("substitution: unrecognized symbol %q", rune(e.Symbol))
}

// Is makes errors.Is(err, ErrUnrecognizedSymbol) true for any
// *UnrecognizedSymbolError in the chain.
func (e *UnrecognizedSymbolError) Is(target error) bool {
	return target == ErrUnrecognizedSymbol
}
