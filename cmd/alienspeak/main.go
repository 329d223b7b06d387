package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	alienspeak "github.com/ieee0824/alienspeak-go"
	"github.com/ieee0824/alienspeak-go/profile"
)

type args struct {
	Message      []string `arg:"positional" help:"words to translate, joined with single spaces"`
	Seed         int64    `arg:"--seed" help:"random seed for reproducible output (0 = time-based)"`
	Profile      string   `arg:"--profile" help:"path to a TOML language profile"`
	DumpProfile  bool     `arg:"--dump-profile" help:"print the effective profile as TOML and exit"`
	MinSyllables int      `arg:"--min-syllables" help:"override the profile's minimum syllables per word"`
	MaxSyllables int      `arg:"--max-syllables" help:"override the profile's maximum syllables per word"`
	Verbose      bool     `arg:"-v,--verbose" help:"log generated syllables to stderr"`
}

func (args) Description() string {
	return "alienspeak replaces every word of a message with a generated alien word.\n" +
		"Repeated words translate the same way within one run."
}

func (args) Epilogue() string {
	return "Options are read only before the message; every argument from the first\n" +
		"word on is message text. Use -- before a message whose first word starts with '-'."
}

// valueOptions are the options that consume the following argument.
var valueOptions = map[string]bool{
	"--seed":          true,
	"--profile":       true,
	"--min-syllables": true,
	"--max-syllables": true,
}

// splitArgs separates the leading options from the message. Option parsing
// stops at "--" or at the first argument that does not start with '-';
// everything after that point is message text, dashes included.
func splitArgs(argv []string) (opts, message []string) {
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "--":
			return argv[:i], argv[i+1:]
		case tok == "-" || !strings.HasPrefix(tok, "-"):
			return argv[:i], argv[i:]
		case valueOptions[tok]:
			i++
		}
	}
	return argv, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	parser, err := arg.NewParser(arg.Config{Program: "alienspeak", IgnoreEnv: true, Out: stderr}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	opts, message := splitArgs(argv)
	if err := parser.Parse(opts); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		parser.WriteUsage(stderr)
		return 1
	}
	a.Message = message

	if a.Verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(-1, nil)
	}

	prof, err := loadProfile(a)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if a.DumpProfile {
		if err := prof.Encode(stdout); err != nil {
			fmt.Fprintf(stderr, "error: encode profile: %v\n", err)
			return 1
		}
		return 0
	}

	trOpts := []alienspeak.Option{alienspeak.WithProfile(prof)}
	if a.Seed != 0 {
		trOpts = append(trOpts, alienspeak.WithSeed(a.Seed))
	}
	tr, err := alienspeak.New(trOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, tr.TranslateMessage(strings.Join(a.Message, " ")))
	return 0
}

// loadProfile returns the profile named by -profile (or the default one)
// with the syllable overrides applied.
func loadProfile(a args) (*profile.Profile, error) {
	prof := profile.Default()
	if a.Profile != "" {
		var err error
		prof, err = profile.LoadFile(a.Profile)
		if err != nil {
			return nil, err
		}
	}
	if a.MinSyllables != 0 {
		prof.Syllables.Min = a.MinSyllables
	}
	if a.MaxSyllables != 0 {
		prof.Syllables.Max = a.MaxSyllables
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}
