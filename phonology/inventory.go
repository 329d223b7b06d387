package phonology

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
)

var (
	// ErrEmptyPhoneme is returned for a table entry with no text.
	ErrEmptyPhoneme = errors.New("empty phoneme")
	// ErrInvalidPhoneme is returned for a phoneme containing whitespace.
	ErrInvalidPhoneme = errors.New("phoneme contains whitespace")
	// ErrAmbiguousPhoneme is returned when a phoneme is listed as both consonant and vowel.
	ErrAmbiguousPhoneme = errors.New("phoneme is both consonant and vowel")
)

// Inventory holds the weighted consonant and vowel tables of a language.
// It is immutable after construction.
type Inventory struct {
	consonants []mathutil.Weighted[Phoneme]
	vowels     []mathutil.Weighted[Phoneme]

	pickC *mathutil.Sampler[Phoneme]
	pickV *mathutil.Sampler[Phoneme]
	class map[Phoneme]Class
}

// NewInventory validates both tables and builds an Inventory from copies of them.
func NewInventory(consonants, vowels []mathutil.Weighted[Phoneme]) (*Inventory, error) {
	inv := &Inventory{
		consonants: append([]mathutil.Weighted[Phoneme](nil), consonants...),
		vowels:     append([]mathutil.Weighted[Phoneme](nil), vowels...),
		class:      make(map[Phoneme]Class, len(consonants)+len(vowels)),
	}

	var err error
	if inv.pickC, err = mathutil.NewSampler(inv.consonants); err != nil {
		return nil, fmt.Errorf("consonants: %w", err)
	}
	if inv.pickV, err = mathutil.NewSampler(inv.vowels); err != nil {
		return nil, fmt.Errorf("vowels: %w", err)
	}

	for i, e := range inv.consonants {
		if err := checkPhoneme(e.Item); err != nil {
			return nil, fmt.Errorf("consonants: entry %d: %w", i, err)
		}
		inv.class[e.Item] = Consonant
	}
	for i, e := range inv.vowels {
		if err := checkPhoneme(e.Item); err != nil {
			return nil, fmt.Errorf("vowels: entry %d: %w", i, err)
		}
		if c, ok := inv.class[e.Item]; ok && c == Consonant {
			return nil, fmt.Errorf("vowels: %q: %w", e.Item, ErrAmbiguousPhoneme)
		}
		inv.class[e.Item] = Vowel
	}
	return inv, nil
}

// checkPhoneme rejects phonemes that would break space-joined output.
func checkPhoneme(p Phoneme) error {
	if p == "" {
		return ErrEmptyPhoneme
	}
	if strings.ContainsAny(string(p), " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneme, p)
	}
	return nil
}

// DefaultConsonants returns the K'kree consonant table with its frequencies.
func DefaultConsonants() []mathutil.Weighted[Phoneme] {
	return []mathutil.Weighted[Phoneme]{
		{Item: PhonB, Weight: 1},
		{Item: PhonG, Weight: 3},
		{Item: PhonGH, Weight: 6},
		{Item: PhonGN, Weight: 4},
		{Item: PhonGR, Weight: 2},
		{Item: PhonGZ, Weight: 1},
		{Item: PhonHK, Weight: 2},
		{Item: PhonK, Weight: 24},
		{Item: PhonKR, Weight: 10},
		{Item: PhonKT, Weight: 1},
		{Item: PhonL, Weight: 5},
		{Item: PhonM, Weight: 2},
		{Item: PhonMB, Weight: 1},
		{Item: PhonN, Weight: 4},
		{Item: PhonP, Weight: 1},
		{Item: PhonR, Weight: 12},
		{Item: PhonRR, Weight: 3},
		{Item: PhonT, Weight: 7},
		{Item: PhonTR, Weight: 2},
		{Item: PhonX, Weight: 4},
		{Item: PhonXX, Weight: 1},
		{Item: PhonXR, Weight: 1},
		{Item: PhonXT, Weight: 1},
	}
}

// DefaultVowels returns the K'kree vowel table with its frequencies.
func DefaultVowels() []mathutil.Weighted[Phoneme] {
	return []mathutil.Weighted[Phoneme]{
		{Item: PhonA, Weight: 19},
		{Item: PhonAA, Weight: 2},
		{Item: PhonE, Weight: 3},
		{Item: PhonEE, Weight: 4},
		{Item: PhonI, Weight: 6},
		{Item: PhonII, Weight: 2},
		{Item: PhonO, Weight: 1},
		{Item: PhonOO, Weight: 2},
		{Item: PhonU, Weight: 6},
		{Item: PhonUU, Weight: 2},
		{Item: PhonGlottal, Weight: 8},
		{Item: PhonClick, Weight: 3},
		{Item: PhonDoubleClick, Weight: 1},
		{Item: PhonClickGlottal, Weight: 1},
	}
}

// DefaultInventory returns the K'kree inventory.
func DefaultInventory() *Inventory {
	inv, err := NewInventory(DefaultConsonants(), DefaultVowels())
	if err != nil {
		panic(err) // static tables
	}
	return inv
}

// PickConsonant returns one consonant chosen in proportion to its weight.
func (inv *Inventory) PickConsonant(rng mathutil.Source) Phoneme {
	return inv.pickC.Sample(rng)
}

// PickVowel returns one vowel chosen in proportion to its weight.
func (inv *Inventory) PickVowel(rng mathutil.Source) Phoneme {
	return inv.pickV.Sample(rng)
}

// Consonants returns a copy of the consonant table.
func (inv *Inventory) Consonants() []mathutil.Weighted[Phoneme] {
	return append([]mathutil.Weighted[Phoneme](nil), inv.consonants...)
}

// Vowels returns a copy of the vowel table.
func (inv *Inventory) Vowels() []mathutil.Weighted[Phoneme] {
	return append([]mathutil.Weighted[Phoneme](nil), inv.vowels...)
}

// Class reports whether p is a consonant or a vowel of this inventory.
func (inv *Inventory) Class(p Phoneme) (Class, bool) {
	c, ok := inv.class[p]
	return c, ok
}

// Phonemes returns the phonemes of one class in table order.
func (inv *Inventory) Phonemes(c Class) []Phoneme {
	table := inv.consonants
	if c == Vowel {
		table = inv.vowels
	}
	out := make([]Phoneme, len(table))
	for i, e := range table {
		out[i] = e.Item
	}
	return out
}
