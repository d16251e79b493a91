package usecase

import (
	"fmt"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
)

// LookupUseCase finds the indexed surface forms sharing a word's stem.
type LookupUseCase struct {
	store     port.GroupStore
	tokenizer port.Tokenizer
	stemmer   port.Stemmer
}

func NewLookupUseCase(store port.GroupStore, tokenizer port.Tokenizer, stemmer port.Stemmer) *LookupUseCase {
	return &LookupUseCase{store: store, tokenizer: tokenizer, stemmer: stemmer}
}

// Lookup normalises word the way the index does, stems it and returns the
// matching group. port.ErrNotFound is returned when nothing shares the stem.
func (u *LookupUseCase) Lookup(word string) (domain.StemGroup, error) {
	words := u.tokenizer.Words(word)
	if len(words) != 1 {
		return domain.StemGroup{}, fmt.Errorf("expected a single word, got %q", word)
	}

	normalized, ok := u.tokenizer.Normalize(words[0])
	if !ok {
		return domain.StemGroup{}, fmt.Errorf("%q is not made of ASCII letters", word)
	}

	stem, err := u.stemmer.Stem(normalized)
	if err != nil {
		return domain.StemGroup{}, fmt.Errorf("failed to stem %q: %w", normalized, err)
	}

	return u.store.GetGroup(stem)
}
