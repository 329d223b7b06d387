package syllable

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ieee0824/alienspeak-go/internal/mathutil"
	"github.com/ieee0824/alienspeak-go/phonology"
)

// decomposes reports whether text can be read as the given shape using
// phonemes of inv.
func decomposes(text string, shape Shape, inv *phonology.Inventory) bool {
	onsets := []string{""}
	if shape.StartsWithConsonant() {
		onsets = phonemeStrings(inv.Phonemes(phonology.Consonant))
	}
	codas := []string{""}
	if shape.EndsWithConsonant() {
		codas = phonemeStrings(inv.Phonemes(phonology.Consonant))
	}
	for _, on := range onsets {
		for _, v := range phonemeStrings(inv.Phonemes(phonology.Vowel)) {
			for _, co := range codas {
				if on+v+co == text {
					return true
				}
			}
		}
	}
	return false
}

func phonemeStrings(ps []phonology.Phoneme) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

func TestBuild(t *testing.T) {
	inv := phonology.DefaultInventory()
	rng := rand.New(rand.NewSource(42))

	for _, shape := range AllShapes() {
		t.Run(string(shape), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				s := Build(shape, inv, rng)
				if s.Text == "" {
					t.Fatal("empty syllable text")
				}
				if s.Shape != shape {
					t.Fatalf("Shape = %s, want %s", s.Shape, shape)
				}
				if !decomposes(s.Text, shape, inv) {
					t.Fatalf("%q is not a %s syllable of the inventory", s.Text, shape)
				}
			}
		})
	}
}

func TestBuildDrawOrder(t *testing.T) {
	// Single-entry tables make the output fully determined.
	inv, err := phonology.NewInventory(
		[]mathutil.Weighted[phonology.Phoneme]{{Item: "K", Weight: 1}},
		[]mathutil.Weighted[phonology.Phoneme]{{Item: "A", Weight: 1}},
	)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeV, "A"},
		{ShapeCV, "KA"},
		{ShapeVC, "AK"},
		{ShapeCVC, "KAK"},
	}
	for _, tt := range tests {
		if got := Build(tt.shape, inv, rng).Text; got != tt.want {
			t.Errorf("Build(%s) = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

func TestShapePredicates(t *testing.T) {
	tests := []struct {
		shape      Shape
		start, end bool
	}{
		{ShapeV, false, false},
		{ShapeCV, true, false},
		{ShapeVC, false, true},
		{ShapeCVC, true, true},
	}
	for _, tt := range tests {
		if got := tt.shape.StartsWithConsonant(); got != tt.start {
			t.Errorf("%s.StartsWithConsonant() = %v, want %v", tt.shape, got, tt.start)
		}
		if got := tt.shape.EndsWithConsonant(); got != tt.end {
			t.Errorf("%s.EndsWithConsonant() = %v, want %v", tt.shape, got, tt.end)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"V", ShapeV, false},
		{"cvc", ShapeCVC, false},
		{" vc ", ShapeVC, false},
		{"CCV", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownShape) {
			t.Errorf("ParseShape(%q) error = %v, want ErrUnknownShape", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContextOf(t *testing.T) {
	tests := []struct {
		name string
		prev *Syllable
		want Context
	}{
		{"start", nil, Initial},
		{"V", &Syllable{"A", ShapeV}, AfterVowel},
		{"CV", &Syllable{"KA", ShapeCV}, AfterVowel},
		{"VC", &Syllable{"AK", ShapeVC}, AfterConsonant},
		{"CVC", &Syllable{"KAK", ShapeCVC}, AfterConsonant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextOf(tt.prev); got != tt.want {
				t.Errorf("ContextOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
