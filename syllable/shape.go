package syllable

import (
	"fmt"
	"strings"
)

// Shape is the consonant/vowel pattern of a syllable.
type Shape string

const (
	ShapeV   Shape = "V"
	ShapeCV  Shape = "CV"
	ShapeVC  Shape = "VC"
	ShapeCVC Shape = "CVC"
)

// AllShapes returns the four syllable shapes in table order.
func AllShapes() []Shape {
	return []Shape{ShapeV, ShapeCV, ShapeVC, ShapeCVC}
}

// ParseShape converts "V", "CV", "VC" or "CVC" (case-insensitive) to a Shape.
func ParseShape(s string) (Shape, error) {
	sh := Shape(strings.ToUpper(strings.TrimSpace(s)))
	if !sh.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
	return sh, nil
}

// Valid reports whether s is one of the four shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeV, ShapeCV, ShapeVC, ShapeCVC:
		return true
	}
	return false
}

// StartsWithConsonant reports whether the shape has a leading consonant.
func (s Shape) StartsWithConsonant() bool {
	return strings.HasPrefix(string(s), "C")
}

// EndsWithConsonant reports whether the shape has a trailing consonant.
func (s Shape) EndsWithConsonant() bool {
	return strings.HasSuffix(string(s), "C")
}

func (s Shape) String() string { return string(s) }

// Context is the position of a new syllable relative to the previous one.
type Context int

const (
	Initial        Context = iota // no previous syllable
	AfterConsonant                // previous syllable ends in a consonant
	AfterVowel                    // previous syllable ends in a vowel
)

func (c Context) String() string {
	switch c {
	case Initial:
		return "initial"
	case AfterConsonant:
		return "after_consonant"
	case AfterVowel:
		return "after_vowel"
	default:
		return fmt.Sprintf("Context(%d)", int(c))
	}
}

// ContextOf returns the context for the syllable that follows prev.
// A nil prev means start of word.
func ContextOf(prev *Syllable) Context {
	switch {
	case prev == nil:
		return Initial
	case prev.Shape.EndsWithConsonant():
		return AfterConsonant
	default:
		return AfterVowel
	}
}
