// Package stats measures generated words against the profile that
// produced them.
package stats

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
	"github.com/ieee0824/alienspeak-go/syllable"
	"github.com/ieee0824/alienspeak-go/word"
)

// Counter accumulates syllable statistics over generated words.
type Counter struct {
	words      int
	lengths    map[int]int // syllables per word -> words
	shapes     [3]map[syllable.Shape]int
	violations int // boundaries where two consonants or two vowels meet
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	c := &Counter{lengths: make(map[int]int)}
	for i := range c.shapes {
		c.shapes[i] = make(map[syllable.Shape]int)
	}
	return c
}

// Add records one word.
func (c *Counter) Add(w word.Word) {
	c.words++
	c.lengths[len(w.Syllables)]++

	var prev *syllable.Syllable
	for i := range w.Syllables {
		s := &w.Syllables[i]
		c.shapes[syllable.ContextOf(prev)][s.Shape]++
		if prev != nil && prev.Shape.EndsWithConsonant() == s.Shape.StartsWithConsonant() {
			c.violations++
		}
		prev = s
	}
}

// Words returns the number of recorded words.
func (c *Counter) Words() int { return c.words }

// Violations returns the number of syllable boundaries that joined two
// consonants or two vowels.
func (c *Counter) Violations() int { return c.violations }

// Lengths returns a copy of the syllables-per-word histogram.
func (c *Counter) Lengths() map[int]int {
	out := make(map[int]int, len(c.lengths))
	for n, k := range c.lengths {
		out[n] = k
	}
	return out
}

// ShapeCount returns how often shape was chosen in ctx.
func (c *Counter) ShapeCount(ctx syllable.Context, shape syllable.Shape) int {
	return c.shapes[ctx][shape]
}

// ShapeShare returns the observed share of shape among syllables built in ctx.
func (c *Counter) ShapeShare(ctx syllable.Context, shape syllable.Shape) float64 {
	total := 0
	for _, n := range c.shapes[ctx] {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(c.shapes[ctx][shape]) / float64(total)
}

// WriteReport writes the length histogram and, per context, the observed
// shape shares next to the shares the policy's weights imply.
func (c *Counter) WriteReport(w io.Writer, policy *syllable.Policy) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "words\t%d\n", c.words)
	fmt.Fprintf(bw, "violations\t%d\n", c.violations)
	fmt.Fprintln(bw)

	lengths := make([]int, 0, len(c.lengths))
	for n := range c.lengths {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	fmt.Fprintln(bw, "\\lengths:")
	for _, n := range lengths {
		share := 0.0
		if c.words > 0 {
			share = float64(c.lengths[n]) / float64(c.words)
		}
		fmt.Fprintf(bw, "%d\t%d\t%.4f\n", n, c.lengths[n], share)
	}
	fmt.Fprintln(bw)

	for _, ctx := range []syllable.Context{syllable.Initial, syllable.AfterConsonant, syllable.AfterVowel} {
		table := policy.Table(ctx)
		total := mathutil.TotalWeight(table)
		fmt.Fprintf(bw, "\\%s:\n", ctx)
		for _, e := range table {
			expected := 0.0
			if total > 0 {
				expected = float64(e.Weight) / float64(total)
			}
			fmt.Fprintf(bw, "%s\t%d\t%.4f\t%.4f\n",
				e.Item, c.shapes[ctx][e.Item], c.ShapeShare(ctx, e.Item), expected)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "\\end\\")
	return bw.Flush()
}
