package alienspeak

import "strings"

// Punctuation is the set of characters removed from each token before
// translation: every ASCII punctuation character. Other runes, including
// non-ASCII punctuation, are kept.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// SplitMessage splits msg on the space character. Consecutive spaces
// yield empty tokens, and an empty message yields one empty token.
func SplitMessage(msg string) []string {
	return strings.Split(msg, " ")
}

// StripPunctuation removes every character of Punctuation from token.
func StripPunctuation(token string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, token)
}

// TranslateMessage translates every space-separated token of msg and joins
// the results with single spaces, in order. Tokens are stripped of
// punctuation first and the stripped form is the cache key, so "world!"
// and "world" translate alike. Tokens that end up empty still get a
// generated word.
func (t *Translator) TranslateMessage(msg string) string {
	tokens := SplitMessage(msg)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = t.TranslateWord(StripPunctuation(tok))
	}
	return strings.Join(out, " ")
}
