package alienspeak

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tliron/commonlog"

	"github.com/ieee0824/alienspeak-go/lexicon"
	"github.com/ieee0824/alienspeak-go/profile"
	"github.com/ieee0824/alienspeak-go/word"
)

// Translator replaces the words of a message with generated alien words.
// Each Translator owns its translation cache, so a source word translates
// the same way every time within one Translator. A Translator is not safe
// for concurrent use; give each goroutine its own.
type Translator struct {
	Profile *profile.Profile
	Dict    *lexicon.Dictionary

	builder *word.Builder
	rng     *rand.Rand
	log     commonlog.Logger
	minSyl  int // 0 = use profile
	maxSyl  int
}

// Option configures a Translator.
type Option func(*Translator)

// WithSeed seeds the random source, making output reproducible.
func WithSeed(seed int64) Option {
	return func(t *Translator) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(t *Translator) {
		t.rng = rng
	}
}

// WithProfile sets the language profile. A nil profile means the default.
func WithProfile(p *profile.Profile) Option {
	return func(t *Translator) {
		t.Profile = p
	}
}

// WithDictionary sets the translation cache, e.g. one pre-seeded with
// fixed translations.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(t *Translator) {
		t.Dict = d
	}
}

// WithLogger sets the logger.
func WithLogger(log commonlog.Logger) Option {
	return func(t *Translator) {
		t.log = log
	}
}

// WithSyllableRange overrides the profile's syllable count range.
func WithSyllableRange(min, max int) Option {
	return func(t *Translator) {
		t.minSyl = min
		t.maxSyl = max
	}
}

// New creates a Translator. Without options it uses the K'kree profile,
// an empty cache and a time-seeded random source.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{}
	for _, opt := range opts {
		opt(t)
	}
	if t.Profile == nil {
		t.Profile = profile.Default()
	}
	if t.Dict == nil {
		t.Dict = lexicon.NewDictionary()
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if t.log == nil {
		t.log = commonlog.GetLogger("alienspeak")
	}

	inv, err := t.Profile.Inventory()
	if err != nil {
		return nil, err
	}
	policy, err := t.Profile.Policy()
	if err != nil {
		return nil, err
	}
	min, max := t.Profile.Syllables.Min, t.Profile.Syllables.Max
	if t.minSyl != 0 || t.maxSyl != 0 {
		min, max = t.minSyl, t.maxSyl
	}
	t.builder, err = word.NewBuilder(inv, policy, t.rng, word.WithSyllableRange(min, max))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", t.Profile.Name, err)
	}

	t.log.Debugf("translator ready: profile %q, %d..%d syllables, %d cached words",
		t.Profile.Name, min, max, t.Dict.Len())
	return t, nil
}

// TranslateWord returns the translation of w, generating and caching one
// on first use. Cache hits consume no randomness. The generated word does
// not depend on the content or length of w; the empty string gets a word too.
func (t *Translator) TranslateWord(w string) string {
	out, hit := t.Dict.GetOrAdd(w, func() string {
		gen := t.builder.Build()
		t.log.Debugf("%q -> %s [%s]", w, gen.Hyphenated(), gen.Shapes())
		return gen.String()
	})
	if hit {
		t.log.Debugf("%q -> %s (cached)", w, out)
	}
	return out
}

// BuildWord generates a fresh word without touching the cache.
func (t *Translator) BuildWord() word.Word {
	return t.builder.Build()
}
