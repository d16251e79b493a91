package analyzer

import "github.com/kljensen/snowball/english"

// SnowballStemmer wraps the English Snowball (Porter2) stemmer so its output
// can be set beside the Porter stems.
type SnowballStemmer struct{}

func NewSnowballStemmer() *SnowballStemmer {
	return &SnowballStemmer{}
}

// Stem never fails; the error is there to satisfy port.Stemmer.
func (s *SnowballStemmer) Stem(word string) (string, error) {
	return english.Stem(word, true), nil
}
