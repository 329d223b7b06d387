package syllable

import (
	"strings"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
	"github.com/ieee0824/alienspeak-go/phonology"
)

// Syllable is one generated syllable. Text is the concatenation of its
// phonemes.
type Syllable struct {
	Text  string
	Shape Shape
}

// Build generates a syllable of the given shape from inv.
// Phonemes are drawn left to right: onset consonant, vowel, coda consonant.
func Build(shape Shape, inv *phonology.Inventory, rng mathutil.Source) Syllable {
	var b strings.Builder
	if shape.StartsWithConsonant() {
		b.WriteString(string(inv.PickConsonant(rng)))
	}
	b.WriteString(string(inv.PickVowel(rng)))
	if shape.EndsWithConsonant() {
		b.WriteString(string(inv.PickConsonant(rng)))
	}
	return Syllable{Text: b.String(), Shape: shape}
}
