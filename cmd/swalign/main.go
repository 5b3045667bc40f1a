package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/swalign/internal/fastaio"
	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/katalvlaran/swalign/substitution"
)

const (
	version  = "0.1.0"
	toolName = "swalign"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Required `group:"required"`
	Optional `group:"optional"`
	General  `group:"general"`
}

// Required struct to store required command line args
type Required struct {
	Query     string   `short:"q" long:"query" value-name:"<filename>" description:"Query protein sequence(s) in FASTA format"`
	GapOpen   *float64 `long:"gap-open" value-name:"<float>" description:"Term added when a gap is opened, e.g. -11"`
	GapExtend *float64 `long:"gap-extend" value-name:"<float>" description:"Term added for each further gap position, e.g. -1"`
}

// Optional struct to store optional command line args
type Optional struct {
	Target       string `short:"t" long:"target" value-name:"<filename>" description:"Target protein sequence(s) in FASTA format (default: the query file)"`
	NumWorker    int    `short:"w" long:"workers" value-name:"<n>" description:"Number of worker goroutines (default: number of CPUs)"`
	ShorterInner bool   `long:"shorter-inner" description:"Use min(n,m) memory per alignment"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

func run(options GlobalOptions, out io.Writer) error {

	if options.Query == "" {
		return fmt.Errorf("missing required parameter -q | --query, try %s --help for details", toolName)
	}
	if options.GapOpen == nil {
		return fmt.Errorf("missing required parameter --gap-open, try %s --help for details", toolName)
	}
	if options.GapExtend == nil {
		return fmt.Errorf("missing required parameter --gap-extend, try %s --help for details", toolName)
	}
	if options.Target == "" {
		options.Target = options.Query
	}

	queries, err := fastaio.ReadFile(options.Query)
	if err != nil {
		return err
	}
	targets, err := fastaio.ReadFile(options.Target)
	if err != nil {
		return err
	}

	var opts []smithwaterman.Option
	if options.ShorterInner {
		opts = append(opts, smithwaterman.WithShorterInner())
	}
	al, err := smithwaterman.New(*options.GapOpen, *options.GapExtend, substitution.Blosum62(), opts...)
	if err != nil {
		return err
	}

	pairs := make([]smithwaterman.Pair, 0, len(queries)*len(targets))
	for _, q := range queries {
		for _, t := range targets {
			pairs = append(pairs, smithwaterman.Pair{A: q.Residues, B: t.Residues})
		}
	}

	scores, err := al.AlignPairs(context.Background(), pairs, options.NumWorker)
	if err != nil {
		return err
	}

	k := 0
	for _, q := range queries {
		for _, t := range targets {
			if _, err := fmt.Fprintf(out, "%s\t%s\t%g\n", q.ID, t.ID, scores[k]); err != nil {
				return err
			}
			k++
		}
	}

	return nil
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	err = run(options, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to align sequences:\n%v\n", err)
		os.Exit(1)
	}
}
