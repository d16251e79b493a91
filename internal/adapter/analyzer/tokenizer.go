package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenizerOptions controls which filters the Tokenizer applies.
type TokenizerOptions struct {
	Stemming       bool
	Stopwords      bool
	MinLength      int
	FoldDiacritics bool
}

// Tokenizer splits text into tokens with optional stemming and stopword removal.
type Tokenizer struct {
	stemmer   port.Stemmer
	stopwords map[string]struct{}
	opts      TokenizerOptions
}

// NewTokenizer creates a new Tokenizer backed by the Porter stemmer.
func NewTokenizer(opts TokenizerOptions) *Tokenizer {
	return NewTokenizerWithStemmer(opts, NewPorterStemmer())
}

// NewTokenizerWithStemmer creates a Tokenizer that stems with stemmer.
func NewTokenizerWithStemmer(opts TokenizerOptions, stemmer port.Stemmer) *Tokenizer {
	return &Tokenizer{
		stemmer:   stemmer,
		stopwords: defaultStopwords(),
		opts:      opts,
	}
}

// Words splits text into lowercase words stripped of ASCII punctuation.
func (t *Tokenizer) Words(text string) []string {
	return SplitWords(text)
}

// Terms returns the words of text that pass the filters, each with its stem.
// When stemming is disabled the stem is the word itself.
func (t *Tokenizer) Terms(text string) ([]domain.Term, error) {
	words := SplitWords(text)
	terms := make([]domain.Term, 0, len(words))

	for _, word := range words {
		word, ok := t.Normalize(word)
		if !ok || len(word) < t.opts.MinLength {
			continue
		}
		if t.opts.Stopwords {
			if _, isStop := t.stopwords[word]; isStop {
				continue
			}
		}

		stem := word
		if t.opts.Stemming {
			var err error
			if stem, err = t.stemmer.Stem(word); err != nil {
				return nil, fmt.Errorf("failed to stem %q: %w", word, err)
			}
		}
		terms = append(terms, domain.Term{Word: word, Stem: stem})
	}

	return terms, nil
}

// Normalize prepares one lowercase word for the stemmer, folding diacritics
// when enabled. It reports false when the result is not made of ASCII letters.
func (t *Tokenizer) Normalize(word string) (string, bool) {
	if t.opts.FoldDiacritics {
		word = FoldDiacritics(word)
	}
	return word, isASCIIWord(word)
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	terms, err := t.Terms(text)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(terms))
	for i, term := range terms {
		tokens[i] = term.Stem
	}
	return tokens, nil
}

// SplitWords splits text on whitespace, removes ASCII punctuation from every
// field and lowercases it. Fields left empty are dropped.
func SplitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	for _, f := range fields {
		w := strings.ToLower(RemoveASCIIPunctuation(f))
		if w != "" {
			words = append(words, w)
		}
	}

	return words
}

// RemoveASCIIPunctuation drops every ASCII punctuation or symbol character.
func RemoveASCIIPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			return -1
		}
		return r
	}, s)
}

// FoldDiacritics decomposes s and strips combining marks, so "café" becomes
// "cafe". Letters without an ASCII base are left alone.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// defaultStopwords returns a set of common English stopwords.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
