package usecase

import (
	"fmt"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
)

// CompareUseCase sets the Porter stem of each word beside a reference stemmer.
type CompareUseCase struct {
	tokenizer port.Tokenizer
	porter    port.Stemmer
	reference port.Stemmer
}

func NewCompareUseCase(tokenizer port.Tokenizer, porter, reference port.Stemmer) *CompareUseCase {
	return &CompareUseCase{tokenizer: tokenizer, porter: porter, reference: reference}
}

// Compare stems every word of text with both stemmers, in order.
func (u *CompareUseCase) Compare(text string) ([]domain.Comparison, error) {
	words := u.tokenizer.Words(text)
	out := make([]domain.Comparison, 0, len(words))

	for _, w := range words {
		p, err := u.porter.Stem(w)
		if err != nil {
			return nil, fmt.Errorf("failed to stem %q: %w", w, err)
		}
		r, err := u.reference.Stem(w)
		if err != nil {
			return nil, fmt.Errorf("reference stemmer failed on %q: %w", w, err)
		}
		out = append(out, domain.Comparison{Word: w, Porter: p, Snowball: r, Agree: p == r})
	}

	return out, nil
}
