package syllable

import (
	"errors"
	"fmt"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
)

var (
	// ErrUnknownShape is returned for a shape other than V, CV, VC or CVC.
	ErrUnknownShape = errors.New("unknown syllable shape")
	// ErrClusterAllowed is returned when a shape table would let two
	// consonants or two vowels meet at a syllable boundary.
	ErrClusterAllowed = errors.New("shape table allows a cluster at the syllable boundary")
)

// Policy chooses the shape of the next syllable from the shape of the
// previous one. Boundaries always alternate consonant and vowel: after a
// consonant-final syllable only V and VC may follow, after a vowel-final
// syllable only CV and CVC.
type Policy struct {
	tables   [3][]mathutil.Weighted[Shape]
	samplers [3]*mathutil.Sampler[Shape]
}

// NewPolicy validates the three shape tables and builds a Policy.
func NewPolicy(initial, afterConsonant, afterVowel []mathutil.Weighted[Shape]) (*Policy, error) {
	p := &Policy{}
	for ctx, table := range [3][]mathutil.Weighted[Shape]{initial, afterConsonant, afterVowel} {
		c := Context(ctx)
		for _, e := range table {
			if !e.Item.Valid() {
				return nil, fmt.Errorf("%s: %w: %q", c, ErrUnknownShape, e.Item)
			}
			if e.Weight <= 0 {
				continue
			}
			if c == AfterConsonant && e.Item.StartsWithConsonant() ||
				c == AfterVowel && !e.Item.StartsWithConsonant() {
				return nil, fmt.Errorf("%s: %s has weight %d: %w", c, e.Item, e.Weight, ErrClusterAllowed)
			}
		}
		s, err := mathutil.NewSampler(table)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
		p.tables[c] = append([]mathutil.Weighted[Shape](nil), table...)
		p.samplers[c] = s
	}
	return p, nil
}

// DefaultInitial returns the shape weights used at the start of a word.
func DefaultInitial() []mathutil.Weighted[Shape] {
	return []mathutil.Weighted[Shape]{
		{Item: ShapeV, Weight: 3},
		{Item: ShapeCV, Weight: 15},
		{Item: ShapeVC, Weight: 6},
		{Item: ShapeCVC, Weight: 12},
	}
}

// DefaultAfterConsonant returns the shape weights used after a consonant-final syllable.
func DefaultAfterConsonant() []mathutil.Weighted[Shape] {
	return []mathutil.Weighted[Shape]{
		{Item: ShapeV, Weight: 12},
		{Item: ShapeCV, Weight: 0},
		{Item: ShapeVC, Weight: 24},
		{Item: ShapeCVC, Weight: 0},
	}
}

// DefaultAfterVowel returns the shape weights used after a vowel-final syllable.
func DefaultAfterVowel() []mathutil.Weighted[Shape] {
	return []mathutil.Weighted[Shape]{
		{Item: ShapeV, Weight: 0},
		{Item: ShapeCV, Weight: 24},
		{Item: ShapeVC, Weight: 0},
		{Item: ShapeCVC, Weight: 12},
	}
}

// DefaultPolicy returns the K'kree shape policy.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultInitial(), DefaultAfterConsonant(), DefaultAfterVowel())
	if err != nil {
		panic(err) // static tables
	}
	return p
}

// Next picks the shape of the syllable following prev (nil at start of word).
func (p *Policy) Next(prev *Syllable, rng mathutil.Source) Shape {
	return p.samplers[ContextOf(prev)].Sample(rng)
}

// Table returns a copy of the shape weights for ctx.
func (p *Policy) Table(ctx Context) []mathutil.Weighted[Shape] {
	return append([]mathutil.Weighted[Shape](nil), p.tables[ctx]...)
}
