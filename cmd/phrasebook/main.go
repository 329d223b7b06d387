package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	alienspeak "github.com/ieee0824/alienspeak-go"
	"github.com/ieee0824/alienspeak-go/profile"
)

var (
	persons = []string{
		"stranger", "herd-leader", "trader", "warrior", "elder",
		"scout", "captain", "priest", "child", "envoy",
	}

	places = []string{
		"the ship", "the camp", "the plains", "the city", "the gate",
		"the market", "the hills", "the river", "the station", "the temple",
	}

	things = []string{
		"water", "grain", "weapons", "the map", "fuel",
		"the cargo", "a gift", "the stars", "meat", "the message",
	}

	verbs = []string{
		"bring", "take", "guard", "find", "carry",
		"burn", "trade", "hide", "share", "keep",
	}

	adjectives = []string{
		"dangerous", "sacred", "empty", "far", "ours",
		"forbidden", "clean", "broken", "ready", "near",
	}
)

type template struct {
	format string
	slots  [][]string
}

var templates = []template{
	{"%s, %s %s!", [][]string{persons, verbs, things}},
	{"The %s will %s %s.", [][]string{persons, verbs, things}},
	{"Do not go to %s.", [][]string{places}},
	{"%s is %s.", [][]string{places, adjectives}},
	{"Where is the %s?", [][]string{persons}},
	{"We %s %s at %s.", [][]string{verbs, things, places}},
	{"%s is %s, %s.", [][]string{things, adjectives, persons}},
	{"Leave %s and %s %s.", [][]string{places, verbs, things}},
}

type args struct {
	Count   int    `arg:"-n,--count" default:"20" help:"number of phrases"`
	Seed    int64  `arg:"--seed" default:"42" help:"random seed for phrase choice and translation"`
	Profile string `arg:"--profile" help:"path to a TOML language profile (default: K'kree)"`
	Vocab   bool   `arg:"--vocab" help:"after the phrases, print every source word and its translation"`
}

func (args) Description() string {
	return "phrasebook prints sample phrases with their alien translation, one\n" +
		"\"phrase<TAB>translation\" per line. All phrases share one vocabulary."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	parser, err := arg.NewParser(arg.Config{Program: "phrasebook", IgnoreEnv: true, Out: stderr}, &a)
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
	commonlog.Configure(-1, nil)

	prof := profile.Default()
	if a.Profile != "" {
		prof, err = profile.LoadFile(a.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	// Phrase choice and word generation use separate sources so adding a
	// template does not reshuffle the vocabulary of existing words.
	rng := rand.New(rand.NewSource(a.Seed))
	tr, err := alienspeak.New(
		alienspeak.WithProfile(prof),
		alienspeak.WithRand(rand.New(rand.NewSource(a.Seed+1))),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	seen := make(map[string]bool)
	attempts := a.Count * 3
	for i := 0; i < attempts && len(seen) < a.Count; i++ {
		phrase := generate(templates[rng.Intn(len(templates))], rng)
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		fmt.Fprintf(stdout, "%s\t%s\n", phrase, tr.TranslateMessage(phrase))
	}

	if a.Vocab {
		fmt.Fprintln(stdout)
		for _, w := range tr.Dict.Words() {
			t, _ := tr.Dict.Lookup(w)
			fmt.Fprintf(stdout, "%s\t%s\n", w, t)
		}
	}

	fmt.Fprintf(stderr, "Generated %d phrases, %d unique words\n", len(seen), tr.Dict.Len())
	return 0
}

func generate(tmpl template, rng *rand.Rand) string {
	vals := make([]interface{}, len(tmpl.slots))
	for i, slot := range tmpl.slots {
		vals[i] = slot[rng.Intn(len(slot))]
	}
	s := fmt.Sprintf(tmpl.format, vals...)
	return strings.ToUpper(s[:1]) + s[1:]
}
