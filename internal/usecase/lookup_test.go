package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/adapter/memstore"
	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
)

func newTermsOf(t *testing.T, text string) []domain.Term {
	t.Helper()
	terms, err := newTokenizer().Terms(text)
	if err != nil {
		t.Fatal(err)
	}
	return terms
}

func TestLookup(t *testing.T) {
	st := memstore.NewMemoryStore()
	st.PutDoc(domain.Document{ID: "d1", Forms: countForms(newTermsOf(t, "connected connecting connection"))})

	uc := NewLookupUseCase(st, newTokenizer(), analyzer.NewPorterStemmer())

	group, err := uc.Lookup("Connections")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group.Stem != "connect" || group.Total != 3 {
		t.Errorf("unexpected group: %+v", group)
	}

	if _, err := uc.Lookup("zebra"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Lookup("two words"); err == nil {
		t.Error("expected an error for more than one word")
	}
}

func TestLookup_FoldsDiacriticsLikeTheIndex(t *testing.T) {
	tok := analyzer.NewTokenizer(analyzer.TokenizerOptions{Stemming: true, Stopwords: true, MinLength: 2, FoldDiacritics: true})
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(st, nil, nil, tok)
	if err := uc.IndexContent("menu.txt", "café cafés", time.Unix(1, 0)); err != nil {
		t.Fatal(err)
	}

	lookup := NewLookupUseCase(st, tok, analyzer.NewPorterStemmer())
	group, err := lookup.Lookup("Café")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group.Stem != "cafe" || group.Forms["cafe"] != 1 || group.Forms["cafes"] != 1 {
		t.Errorf("unexpected group: %+v", group)
	}

	if _, err := lookup.Lookup("日本"); err == nil || errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected a normalisation error, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	uc := NewCompareUseCase(newTokenizer(), analyzer.NewPorterStemmer(), analyzer.NewSnowballStemmer())

	got, err := uc.Compare("Running plays")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 comparisons, got %+v", got)
	}

	if got[0].Word != "running" || got[0].Porter != "run" || !got[0].Agree {
		t.Errorf("unexpected comparison: %+v", got[0])
	}
	// y is always a vowel here, so step 1c rewrites "play" while Porter2 keeps it
	if got[1].Porter != "plai" || got[1].Snowball != "play" || got[1].Agree {
		t.Errorf("unexpected comparison: %+v", got[1])
	}
}
