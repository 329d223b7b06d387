package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"unicode"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tmpl := range templates {
		s := generate(tmpl, rng)
		if strings.Contains(s, "%") {
			t.Errorf("unfilled slot in %q", s)
		}
		if r := []rune(s)[0]; !unicode.IsUpper(r) {
			t.Errorf("%q does not start with a capital", s)
		}
	}
}

func TestRunSharedVocabulary(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-n", "30", "--seed", "7"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}

	vocab := make(map[string]string)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("no phrases")
	}
	for _, line := range lines {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			t.Fatalf("line %q: want phrase<TAB>translation", line)
		}
		src := strings.Split(parts[0], " ")
		dst := strings.Split(parts[1], " ")
		if len(src) != len(dst) {
			t.Fatalf("line %q: %d words translated to %d", line, len(src), len(dst))
		}
		for i, w := range src {
			key := strings.Trim(w, ",.!?")
			if prev, ok := vocab[key]; ok && prev != dst[i] {
				t.Errorf("%q translated as %q and %q", key, prev, dst[i])
			}
			vocab[key] = dst[i]
		}
	}
}

func TestRunReproducible(t *testing.T) {
	var a, b, errOut bytes.Buffer
	run([]string{"-n", "5", "--seed", "11"}, &a, &errOut)
	run([]string{"-n", "5", "--seed", "11"}, &b, &errOut)
	if a.String() != b.String() {
		t.Errorf("same seed gave different phrasebooks:\n%s\n---\n%s", a.String(), b.String())
	}
}

func TestRunVocab(t *testing.T) {
	var plain, withVocab, errOut bytes.Buffer
	run([]string{"-n", "10", "--seed", "3"}, &plain, &errOut)
	if code := run([]string{"-n", "10", "--seed", "3", "--vocab"}, &withVocab, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}

	phrases, vocab, ok := strings.Cut(withVocab.String(), "\n\n")
	if !ok {
		t.Fatalf("no vocabulary section:\n%s", withVocab.String())
	}
	if phrases+"\n" != plain.String() {
		t.Errorf("--vocab changed the phrases:\n%s\n---\n%s", phrases, plain.String())
	}

	lines := strings.Split(strings.TrimSuffix(vocab, "\n"), "\n")
	for i, line := range lines {
		word, translation, ok := strings.Cut(line, "\t")
		if !ok || translation == "" {
			t.Fatalf("vocab line %q: want word<TAB>translation", line)
		}
		if i > 0 {
			prev, _, _ := strings.Cut(lines[i-1], "\t")
			if prev >= word {
				t.Errorf("vocabulary not sorted: %q before %q", prev, word)
			}
		}
	}
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--help"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "--vocab") {
		t.Errorf("help output missing options:\n%s", out.String())
	}
}
