package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	alienspeak "github.com/ieee0824/alienspeak-go"
	"github.com/ieee0824/alienspeak-go/profile"
	"github.com/ieee0824/alienspeak-go/stats"
	"github.com/ieee0824/alienspeak-go/syllable"
)

type args struct {
	Profile string `arg:"--profile" help:"path to a TOML language profile (default: K'kree)"`
	Words   int    `arg:"-n,--words" default:"10000" help:"number of words to generate"`
	Seed    int64  `arg:"--seed" default:"1" help:"random seed"`
	Output  string `arg:"-o,--output" help:"output file (default: stdout)"`
}

func (args) Description() string {
	return "profilestat generates words from a language profile and compares the\n" +
		"observed syllable shapes and word lengths with the profile's weights."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	parser, err := arg.NewParser(arg.Config{Program: "profilestat", IgnoreEnv: true, Out: stderr}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := parser.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		parser.WriteUsage(stderr)
		return 1
	}
	if a.Words <= 0 {
		fmt.Fprintln(stderr, "error: --words must be positive")
		return 1
	}
	commonlog.Configure(-1, nil)

	prof := profile.Default()
	if a.Profile != "" {
		prof, err = profile.LoadFile(a.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	policy, err := prof.Policy()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	tr, err := alienspeak.New(alienspeak.WithProfile(prof), alienspeak.WithSeed(a.Seed))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	c := stats.NewCounter()
	for i := 0; i < a.Words; i++ {
		c.Add(tr.BuildWord())
	}

	if a.Output == "" {
		err = c.WriteReport(stdout, policy)
	} else {
		err = writeReportFile(a.Output, c, policy)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: write report: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "Counted %d words from profile %q (%d boundary violations)\n",
		c.Words(), prof.Name, c.Violations())
	return 0
}

// writeReportFile writes the report to path. A failed close is reported
// like a failed write.
func writeReportFile(path string, c *stats.Counter, policy *syllable.Policy) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WriteReport(f, policy)
}
