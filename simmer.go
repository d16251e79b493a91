// Package simmer stems English words with the Porter algorithm.
//
//	stem, err := simmer.Stem("excellent") // "excel"
//	words, err := simmer.StemSentence("Alex was an excellent dancer.")
//	// [alex wa an excel dancer]
package simmer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/port"
)

// ErrStem is wrapped by every error returned from this package.
var ErrStem = errors.New("simmer: unable to stem word")

var porter port.Stemmer = analyzer.NewPorterStemmer()

// Stem lowercases word and returns its Porter stem. The word must consist of
// ASCII letters only; strip punctuation and digits beforehand.
func Stem(word string) (string, error) {
	stem, err := porter.Stem(strings.ToLower(word))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrStem, word, err)
	}
	return stem, nil
}

// StemSentence splits sentence on whitespace, removes ASCII punctuation from
// each word, lowercases it and stems it. The first failing word aborts.
func StemSentence(sentence string) ([]string, error) {
	words := analyzer.SplitWords(sentence)
	stems := make([]string, 0, len(words))

	for _, w := range words {
		stem, err := Stem(w)
		if err != nil {
			return nil, err
		}
		stems = append(stems, stem)
	}

	return stems, nil
}
