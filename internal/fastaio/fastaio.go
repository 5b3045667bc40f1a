// Package fastaio reads FASTA files into plain residue strings for the
// swalign driver. Residues are passed through untouched; validating them
// against an alphabet is the aligner's job.
package fastaio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrNoRecords indicates the input holds no FASTA record.
var ErrNoRecords = errors.New("fastaio: no FASTA records")

// Record is one FASTA entry.
type Record struct {
	ID       string // first word of the header line
	Desc     string // rest of the header line
	Residues string
}

// Read parses every record from r, in order.
func Read(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var recs []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("fastaio: unexpected sequence type %T", sc.Seq())
		}
		residues := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			residues[i] = byte(l)
		}
		recs = append(recs, Record{ID: s.ID, Desc: s.Desc, Residues: string(residues)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fastaio: record %d: %w", len(recs)+1, err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return recs, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}
