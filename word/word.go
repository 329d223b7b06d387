package word

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
	"github.com/ieee0824/alienspeak-go/phonology"
	"github.com/ieee0824/alienspeak-go/syllable"
)

// Default syllable count range. The count is drawn uniformly and has no
// relation to the source word.
const (
	DefaultMinSyllables = 1
	DefaultMaxSyllables = 6
)

// ErrSyllableRange is returned for a syllable range that is empty or starts below 1.
var ErrSyllableRange = errors.New("invalid syllable range")

// Word is an ordered sequence of syllables.
type Word struct {
	Syllables []syllable.Syllable
}

// String renders the word as the concatenation of its syllables.
func (w Word) String() string {
	var b strings.Builder
	for _, s := range w.Syllables {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Hyphenated renders the word with syllables separated by "-".
func (w Word) Hyphenated() string {
	parts := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		parts[i] = s.Text
	}
	return strings.Join(parts, "-")
}

// Shapes returns the shape of each syllable, e.g. "CV.VC".
func (w Word) Shapes() string {
	parts := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		parts[i] = string(s.Shape)
	}
	return strings.Join(parts, ".")
}

// Builder assembles random words from an inventory and a shape policy.
// A Builder is not safe for concurrent use; it shares its random source.
type Builder struct {
	inv    *phonology.Inventory
	policy *syllable.Policy
	rng    mathutil.Source
	minSyl int
	maxSyl int
}

// Option configures a Builder.
type Option func(*Builder)

// WithSyllableRange sets the inclusive range the syllable count is drawn from.
func WithSyllableRange(min, max int) Option {
	return func(b *Builder) {
		b.minSyl = min
		b.maxSyl = max
	}
}

// NewBuilder creates a Builder.
func NewBuilder(inv *phonology.Inventory, policy *syllable.Policy, rng mathutil.Source, opts ...Option) (*Builder, error) {
	b := &Builder{
		inv:    inv,
		policy: policy,
		rng:    rng,
		minSyl: DefaultMinSyllables,
		maxSyl: DefaultMaxSyllables,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.minSyl < 1 || b.maxSyl < b.minSyl {
		return nil, fmt.Errorf("%w: %d..%d", ErrSyllableRange, b.minSyl, b.maxSyl)
	}
	return b, nil
}

// SyllableRange returns the inclusive syllable count range.
func (b *Builder) SyllableRange() (min, max int) {
	return b.minSyl, b.maxSyl
}

// Build generates one word. Each syllable's shape depends on how the
// previous syllable ended, so consonants and vowels alternate at every
// syllable boundary.
func (b *Builder) Build() Word {
	n := b.minSyl + b.rng.Intn(b.maxSyl-b.minSyl+1)
	syls := make([]syllable.Syllable, 0, n)

	var prev *syllable.Syllable
	for i := 0; i < n; i++ {
		shape := b.policy.Next(prev, b.rng)
		syls = append(syls, syllable.Build(shape, b.inv, b.rng))
		prev = &syls[len(syls)-1]
	}
	return Word{Syllables: syls}
}
