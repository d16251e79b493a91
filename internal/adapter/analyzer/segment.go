package analyzer

import (
	"errors"
	"strings"
)

// ErrCharacterAccess is returned when a character expected at a given index
// cannot be read while building the runs of a word.
var ErrCharacterAccess = errors.New("unable to get the current character while building the consonant/vowel runs")

// Run is a maximal sequence of characters sharing the same Kind.
type Run struct {
	Kind  Kind
	Chars string
}

// Segment splits word into its consonant and vowel runs, left to right.
// An empty word yields no runs.
func Segment(word string) ([]Run, error) {
	if word == "" {
		return nil, nil
	}

	first, ok := charAt(word, 0)
	if !ok {
		return nil, ErrCharacterAccess
	}

	runs := make([]Run, 0, len(word)/2+1)
	kind := Classify(first)
	start := 0

	for i := 1; i < len(word); i++ {
		c, ok := charAt(word, i)
		if !ok {
			return nil, ErrCharacterAccess
		}
		if k := Classify(c); k != kind {
			runs = append(runs, Run{Kind: kind, Chars: word[start:i]})
			kind, start = k, i
		}
	}

	return append(runs, Run{Kind: kind, Chars: word[start:]}), nil
}

// Pattern renders runs as their kinds, e.g. "CVCV" for "trouble".
func Pattern(runs []Run) string {
	var b strings.Builder
	b.Grow(len(runs))
	for _, r := range runs {
		b.WriteString(r.Kind.String())
	}
	return b.String()
}

func charAt(word string, i int) (byte, bool) {
	if i < 0 || i >= len(word) {
		return 0, false
	}
	return word[i], true
}
