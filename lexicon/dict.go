package lexicon

import "sort"

// Dictionary maps source words to their generated translations.
// Keys are exact, case-sensitive matches; no normalization is applied.
// Entries are never evicted. A Dictionary is not safe for concurrent use.
// The zero value is an empty dictionary ready to use.
type Dictionary struct {
	Entries map[string]string // source word -> translation
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string]string),
	}
}

// Add stores the translation for word, replacing any previous one.
func (d *Dictionary) Add(word, translation string) {
	if d.Entries == nil {
		d.Entries = make(map[string]string)
	}
	d.Entries[word] = translation
}

// Lookup returns the cached translation for word.
func (d *Dictionary) Lookup(word string) (string, bool) {
	t, ok := d.Entries[word]
	return t, ok
}

// GetOrAdd returns the cached translation for word. On a miss it calls gen,
// stores the result and returns it. The second result reports a hit.
func (d *Dictionary) GetOrAdd(word string, gen func() string) (string, bool) {
	if t, ok := d.Entries[word]; ok {
		return t, true
	}
	t := gen()
	d.Add(word, t)
	return t, false
}

// Len returns the number of cached words.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}

// Words returns all cached source words in sorted order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
