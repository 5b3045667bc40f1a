package substitution_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/swalign/substitution"
)

// Blosum62Suite checks the built-in table against well-known BLOSUM62 facts.
type Blosum62Suite struct {
	suite.Suite
	m *substitution.Table
}

func (s *Blosum62Suite) SetupTest() {
	s.m = substitution.Blosum62()
}

// TestShape verifies the alphabet and the shared instance.
func (s *Blosum62Suite) TestShape() {
	s.Equal("BLOSUM62", s.m.Name())
	s.Equal(24, s.m.Len())
	s.Equal(substitution.Blosum62Symbols, s.m.Alphabet().Symbols())
	s.Same(s.m, substitution.Blosum62(), "Blosum62 must return the shared table")
}

// TestKnownScores spot-checks entries quoted in the literature.
func (s *Blosum62Suite) TestKnownScores() {
	cases := []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4},
		{'A', 'R', -1},
		{'W', 'W', 11},
		{'C', 'C', 9},
		{'W', 'Y', 2},
		{'I', 'V', 3},
		{'H', 'H', 8},
		{'B', 'D', 4},
		{'Z', 'E', 4},
		{'X', 'X', -1},
		{'*', '*', 1},
		{'a', 'r', -1},
	}
	for _, tc := range cases {
		got, err := s.m.Score(tc.a, tc.b)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "score(%c,%c)", tc.a, tc.b)
	}
}

// TestStopRow checks '*' scores -4 against every other symbol.
func (s *Blosum62Suite) TestStopRow() {
	for _, c := range []byte(substitution.Blosum62Symbols) {
		if c == '*' {
			continue
		}
		got, err := s.m.Score('*', c)
		s.Require().NoError(err)
		s.Equal(-4, got, "score(*,%c)", c)
	}
}

// TestSymmetric re-checks symmetry over the full table.
func (s *Blosum62Suite) TestSymmetric() {
	n := s.m.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij, err := s.m.At(i, j)
			s.Require().NoError(err)
			ji, err := s.m.At(j, i)
			s.Require().NoError(err)
			s.Equal(ij, ji, "At(%d,%d)", i, j)
		}
	}
}

// TestStandardResiduesSelfMaximal holds for the 20 standard amino acids.
func (s *Blosum62Suite) TestStandardResiduesSelfMaximal() {
	for _, c := range []byte("ARNDCQEGHILKMFPSTWYV") {
		ok, err := s.m.SelfMaximal(c)
		s.Require().NoError(err)
		s.True(ok, "%c", c)
	}

	// X scores 0 against A but -1 against itself.
	ok, err := s.m.SelfMaximal('X')
	s.Require().NoError(err)
	s.False(ok)
}

// TestUnrecognized rejects digits and gap characters.
func (s *Blosum62Suite) TestUnrecognized() {
	for _, c := range []byte("1-.J") {
		_, err := s.m.Score('A', c)
		s.ErrorIs(err, substitution.ErrUnrecognizedSymbol, "%q", c)
	}
}

func TestBlosum62Suite(t *testing.T) {
	require.NotNil(t, substitution.Blosum62())
	suite.Run(t, new(Blosum62Suite))
}
