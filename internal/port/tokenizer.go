package port

import "github.com/shigedangao/simmer/internal/domain"

type Tokenizer interface {
	// Words splits text on whitespace, drops punctuation and lowercases.
	Words(text string) []string

	// Normalize folds a single word the way Terms does and reports whether
	// it can be stemmed.
	Normalize(word string) (string, bool)

	// Terms returns every kept word of text paired with its stem.
	Terms(text string) ([]domain.Term, error)

	// Tokenize returns the stems of Terms.
	Tokenize(text string) ([]string, error)
}
