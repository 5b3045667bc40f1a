package substitution_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/swalign/substitution"
)

// ExampleBlosum62 looks up a few residue pairs, including a lower-case one.
func ExampleBlosum62() {
	m := substitution.Blosum62()
	for _, p := range []string{"AA", "AR", "wy", "**"} {
		s, err := m.Score(p[0], p[1])
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s=%d\n", p, s)
	}
	// Output:
	// AA=4
	// AR=-1
	// wy=2
	// **=1
}

// ExampleIdentity builds a nucleotide match/mismatch scheme and shows how an
// unknown symbol surfaces.
func ExampleIdentity() {
	dna, err := substitution.Identity("ACGT", 5, -4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	match, _ := dna.Score('G', 'g')
	mismatch, _ := dna.Score('G', 'T')
	_, err = dna.Score('G', 'N')
	fmt.Println(match, mismatch, errors.Is(err, substitution.ErrUnrecognizedSymbol))
	fmt.Println(err)
	// Output:
	// 5 -4 true
	// substitution: unrecognized symbol 'N'
}
