// Package profile handles language profile files: the phoneme tables,
// syllable shape weights and syllable count range of a generated language,
// stored as TOML.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
	"github.com/ieee0824/alienspeak-go/phonology"
	"github.com/ieee0824/alienspeak-go/syllable"
	"github.com/ieee0824/alienspeak-go/word"
)

var log = commonlog.GetLogger("alienspeak.profile")

// ErrUnknownKey is returned when a profile file contains keys that map to no field.
var ErrUnknownKey = errors.New("unknown profile keys")

// Profile is a language profile.
type Profile struct {
	Name       string          `toml:"name"`
	Source     string          `toml:"source,omitempty"`
	Syllables  SyllableRange   `toml:"syllables"`
	Consonants []PhonemeWeight `toml:"consonants"`
	Vowels     []PhonemeWeight `toml:"vowels"`
	Shapes     ShapeTables     `toml:"shapes"`
}

// SyllableRange is the inclusive range a word's syllable count is drawn from.
type SyllableRange struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// PhonemeWeight is one row of a phoneme table.
type PhonemeWeight struct {
	Phoneme string `toml:"phoneme"`
	Weight  int    `toml:"weight"`
}

// ShapeTables holds shape -> weight maps for each syllable context.
// Keys are "V", "CV", "VC" and "CVC"; missing shapes have weight 0.
type ShapeTables struct {
	Initial        map[string]int `toml:"initial"`
	AfterConsonant map[string]int `toml:"after_consonant"`
	AfterVowel     map[string]int `toml:"after_vowel"`
}

// Default returns the K'kree profile.
func Default() *Profile {
	p := &Profile{
		Name:   "K'kree",
		Source: "GDW Alien Module 2: K'kree",
		Syllables: SyllableRange{
			Min: word.DefaultMinSyllables,
			Max: word.DefaultMaxSyllables,
		},
		Consonants: fromPhonemeTable(phonology.DefaultConsonants()),
		Vowels:     fromPhonemeTable(phonology.DefaultVowels()),
	}
	policy := syllable.DefaultPolicy()
	p.Shapes = ShapeTables{
		Initial:        fromShapeTable(policy.Table(syllable.Initial)),
		AfterConsonant: fromShapeTable(policy.Table(syllable.AfterConsonant)),
		AfterVowel:     fromShapeTable(policy.Table(syllable.AfterVowel)),
	}
	return p
}

// Load reads a profile from TOML. Sections left out fall back to the
// default profile; unknown keys are an error.
func Load(r io.Reader) (*Profile, error) {
	var p Profile
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	def := Default()
	if !md.IsDefined("name") {
		p.Name = def.Name
		if !md.IsDefined("source") {
			p.Source = def.Source
		}
	}
	if !md.IsDefined("syllables", "min") {
		p.Syllables.Min = def.Syllables.Min
	}
	if !md.IsDefined("syllables", "max") {
		p.Syllables.Max = def.Syllables.Max
	}
	if !md.IsDefined("consonants") {
		p.Consonants = def.Consonants
	}
	if !md.IsDefined("vowels") {
		p.Vowels = def.Vowels
	}
	if !md.IsDefined("shapes", "initial") {
		p.Shapes.Initial = def.Shapes.Initial
	}
	if !md.IsDefined("shapes", "after_consonant") {
		p.Shapes.AfterConsonant = def.Shapes.AfterConsonant
	}
	if !md.IsDefined("shapes", "after_vowel") {
		p.Shapes.AfterVowel = def.Shapes.AfterVowel
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("loaded profile %q from %s (%d consonants, %d vowels)",
		p.Name, path, len(p.Consonants), len(p.Vowels))
	return p, nil
}

// Encode writes the profile as TOML.
func (p *Profile) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Validate checks that the profile can build an inventory, a shape policy
// and a non-empty syllable range.
func (p *Profile) Validate() error {
	if p.Syllables.Min < 1 || p.Syllables.Max < p.Syllables.Min {
		return fmt.Errorf("syllables: %w: %d..%d", word.ErrSyllableRange, p.Syllables.Min, p.Syllables.Max)
	}
	if _, err := p.Inventory(); err != nil {
		return err
	}
	if _, err := p.Policy(); err != nil {
		return err
	}
	return nil
}

// Inventory builds the phoneme inventory described by the profile.
func (p *Profile) Inventory() (*phonology.Inventory, error) {
	inv, err := phonology.NewInventory(toPhonemeTable(p.Consonants), toPhonemeTable(p.Vowels))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return inv, nil
}

// Policy builds the syllable shape policy described by the profile.
func (p *Profile) Policy() (*syllable.Policy, error) {
	var tables [3][]mathutil.Weighted[syllable.Shape]
	for i, m := range []map[string]int{p.Shapes.Initial, p.Shapes.AfterConsonant, p.Shapes.AfterVowel} {
		t, err := toShapeTable(m)
		if err != nil {
			return nil, fmt.Errorf("profile %q: shapes.%s: %w", p.Name, syllable.Context(i), err)
		}
		tables[i] = t
	}
	policy, err := syllable.NewPolicy(tables[0], tables[1], tables[2])
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return policy, nil
}

func fromPhonemeTable(table []mathutil.Weighted[phonology.Phoneme]) []PhonemeWeight {
	out := make([]PhonemeWeight, len(table))
	for i, e := range table {
		out[i] = PhonemeWeight{Phoneme: string(e.Item), Weight: e.Weight}
	}
	return out
}

func toPhonemeTable(rows []PhonemeWeight) []mathutil.Weighted[phonology.Phoneme] {
	out := make([]mathutil.Weighted[phonology.Phoneme], len(rows))
	for i, r := range rows {
		out[i] = mathutil.Weighted[phonology.Phoneme]{Item: phonology.Phoneme(r.Phoneme), Weight: r.Weight}
	}
	return out
}

func fromShapeTable(table []mathutil.Weighted[syllable.Shape]) map[string]int {
	out := make(map[string]int, len(table))
	for _, e := range table {
		out[string(e.Item)] = e.Weight
	}
	return out
}

// toShapeTable converts a shape map into a table in fixed shape order so
// that sampling does not depend on map iteration.
func toShapeTable(m map[string]int) ([]mathutil.Weighted[syllable.Shape], error) {
	weights := make(map[syllable.Shape]int, len(m))
	for k, w := range m {
		s, err := syllable.ParseShape(k)
		if err != nil {
			return nil, err
		}
		weights[s] += w
	}
	out := make([]mathutil.Weighted[syllable.Shape], 0, 4)
	for _, s := range syllable.AllShapes() {
		out = append(out, mathutil.Weighted[syllable.Shape]{Item: s, Weight: weights[s]})
	}
	return out, nil
}
