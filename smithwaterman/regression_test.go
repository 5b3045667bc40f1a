package smithwaterman_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/swalign/internal/fastaio"
	"github.com/katalvlaran/swalign/smithwaterman"
)

// ARSESuite pins scores for human ARSE (P51690) against itself and against
// the gorilla ortholog G3RJQ1, which differs by a few substitutions and one
// internal deletion.
type ARSESuite struct {
	suite.Suite
	human, gorilla string
}

func (s *ARSESuite) SetupSuite() {
	recs, err := fastaio.ReadFile("../testdata/arse.fasta")
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.human, s.gorilla = recs[0].Residues, recs[1].Residues
}

// TestSelf equals the sum of self-substitution scores.
func (s *ARSESuite) TestSelf() {
	al := newBlosum(s.T(), -8, 0)

	human, err := al.Align(s.human, s.human)
	s.Require().NoError(err)
	s.Equal(selfSum(s.T(), s.human), human)
	s.Equal(3209.0, human)

	gorilla, err := al.Align(s.gorilla, s.gorilla)
	s.Require().NoError(err)
	s.Equal(selfSum(s.T(), s.gorilla), gorilla)
	s.Equal(2873.0, gorilla)
}

// TestOrtholog is lower than the self score but close to it.
func (s *ARSESuite) TestOrtholog() {
	cases := []struct {
		open, ext float64
		want      float64
	}{
		{-8, 0, 2848},
		{-10, -1, 2789},
		{-11, -1, 2788},
	}
	for _, tc := range cases {
		al := newBlosum(s.T(), tc.open, tc.ext)
		got, err := al.Align(s.human, s.gorilla)
		s.Require().NoError(err)
		s.Equal(tc.want, got, "gaps(%v,%v)", tc.open, tc.ext)
		s.Less(got, 3209.0)

		rev, err := al.Align(s.gorilla, s.human)
		s.Require().NoError(err)
		s.Equal(got, rev)
	}
}

// TestPositiveGapTerms pins the scores for gap terms (8, 0). Both terms are
// added as given, so every gap is a bonus and the scores exceed the
// self-substitution sums.
func (s *ARSESuite) TestPositiveGapTerms() {
	al := newBlosum(s.T(), 8, 0)

	human, err := al.Align(s.human, s.human)
	s.Require().NoError(err)
	s.Equal(9416.0, human)

	gorilla, err := al.Align(s.gorilla, s.gorilla)
	s.Require().NoError(err)
	s.Equal(8488.0, gorilla)

	fwd, err := al.Align(s.human, s.gorilla)
	s.Require().NoError(err)
	s.Equal(8952.0, fwd)

	rev, err := al.Align(s.gorilla, s.human)
	s.Require().NoError(err)
	s.Equal(8952.0, rev)

	narrow := newBlosum(s.T(), 8, 0, smithwaterman.WithShorterInner())
	got, err := narrow.Align(s.human, s.gorilla)
	s.Require().NoError(err)
	s.Equal(8952.0, got)

	s.Greater(human, selfSum(s.T(), s.human))
}

// TestShorterInner gives the same bits with the narrow layout.
func (s *ARSESuite) TestShorterInner() {
	al := newBlosum(s.T(), -8, 0, smithwaterman.WithShorterInner())
	got, err := al.Align(s.human, s.gorilla)
	s.Require().NoError(err)
	s.Equal(2848.0, got)
}

func TestARSESuite(t *testing.T) {
	suite.Run(t, new(ARSESuite))
}
