package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/adapter/fs"
	"github.com/shigedangao/simmer/internal/adapter/memstore"
	"github.com/shigedangao/simmer/internal/adapter/store"
	"github.com/shigedangao/simmer/internal/port"
)

type fakeFiles struct {
	files    []port.FileInfo
	contents map[string]string
}

func (f *fakeFiles) Walk(string) ([]port.FileInfo, error) { return f.files, nil }

func (f *fakeFiles) ReadFile(path string) (string, error) {
	text, ok := f.contents[path]
	if !ok {
		return "", os.ErrNotExist
	}
	return text, nil
}

func newTokenizer() *analyzer.Tokenizer {
	return analyzer.NewTokenizer(analyzer.TokenizerOptions{Stemming: true, Stopwords: true, MinLength: 2})
}

func TestIndex_BuildsStemGroups(t *testing.T) {
	files := &fakeFiles{
		files: []port.FileInfo{
			{Path: "/a.txt", ModTime: 100},
			{Path: "/b.txt", ModTime: 100},
		},
		contents: map[string]string{
			"/a.txt": "Connected, connecting; connection!",
			"/b.txt": "The cats sat.",
		},
	}
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(st, files, files, newTokenizer())

	var calls int
	result, err := uc.Index("/", func(processed, total int, _ string) {
		calls++
		if total != 2 || processed != calls {
			t.Errorf("unexpected progress %d/%d", processed, total)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FilesIndexed != 2 || len(result.Errors) != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
	if calls != 2 {
		t.Errorf("expected 2 progress calls, got %d", calls)
	}

	group, err := st.GetGroup("connect")
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if group.Total != 3 || len(group.Forms) != 3 {
		t.Errorf("expected 3 forms under connect, got %+v", group)
	}
	if _, err := st.GetGroup("the"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("stopwords must not be indexed, got %v", err)
	}
	if result.Stats.TotalTokens != 5 {
		t.Errorf("expected 5 tokens, got %+v", result.Stats)
	}
}

func TestIndex_Incremental(t *testing.T) {
	files := &fakeFiles{
		files: []port.FileInfo{
			{Path: "/a.txt", ModTime: 100},
			{Path: "/b.txt", ModTime: 100},
		},
		contents: map[string]string{
			"/a.txt": "hopping",
			"/b.txt": "falling",
			"/c.txt": "meeting",
		},
	}
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(st, files, files, newTokenizer())

	if _, err := uc.Index("/", nil); err != nil {
		t.Fatal(err)
	}

	files.files = []port.FileInfo{
		{Path: "/a.txt", ModTime: 100},
		{Path: "/c.txt", ModTime: 200},
	}
	result, err := uc.Index("/", nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.FilesSkipped != 1 || result.FilesIndexed != 1 || result.FilesDeleted != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if _, err := st.GetGroup("fall"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("removed file should leave the index, got %v", err)
	}
	if _, err := st.GetGroup("meet"); err != nil {
		t.Errorf("new file should be indexed: %v", err)
	}
}

func TestIndex_ReadErrorIsReported(t *testing.T) {
	files := &fakeFiles{
		files:    []port.FileInfo{{Path: "/missing.txt", ModTime: 1}},
		contents: map[string]string{},
	}
	uc := NewIndexUseCase(memstore.NewMemoryStore(), files, files, newTokenizer())

	result, err := uc.Index("/", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) != 1 || result.FilesIndexed != 0 {
		t.Errorf("expected one reported error, got %+v", result)
	}
}

func TestIndex_BoltStoreOnDisk(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("Alex was an excellent dancer."), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := store.NewBoltStore(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	tok := newTokenizer()
	uc := NewIndexUseCase(st, fs.NewWalker([]string{"**/*.txt"}, nil), fs.Reader{}, tok)
	result, err := uc.Index(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FilesIndexed != 1 {
		t.Fatalf("expected 1 indexed file, got %+v", result)
	}

	lookup := NewLookupUseCase(st, tok, analyzer.NewPorterStemmer())
	group, err := lookup.Lookup("Excellence")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if group.Stem != "excel" || group.Forms["excellent"] != 1 {
		t.Errorf("unexpected group: %+v", group)
	}
}

func TestIndexContent_DropsEmptyStems(t *testing.T) {
	st, err := store.NewBoltStore(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	tok := analyzer.NewTokenizer(analyzer.TokenizerOptions{Stemming: true, MinLength: 1})
	uc := NewIndexUseCase(st, nil, nil, tok)

	if err := uc.IndexContent("plural.txt", "s is cats", time.Unix(1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	groups, err := st.ListGroups()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 || groups[0].Stem != "cat" || groups[1].Stem != "i" {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestIndexContent_ReplacesPreviousVersion(t *testing.T) {
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(st, nil, nil, newTokenizer())

	if err := uc.IndexContent("note.txt", "relational relate", time.Unix(1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := uc.IndexContent("note.txt", "hopping", time.Unix(2, 0)); err != nil {
		t.Fatal(err)
	}

	if _, err := st.GetGroup("relat"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("old version should be withdrawn, got %v", err)
	}
	group, err := st.GetGroup("hop")
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if group.Forms["hopping"] != 1 {
		t.Errorf("unexpected group: %+v", group)
	}

	docs, _ := st.ListDocs()
	if len(docs) != 1 || docs[0].Path != "note.txt" {
		t.Errorf("expected a single document, got %+v", docs)
	}
}

func TestCountForms(t *testing.T) {
	forms := countForms(newTermsOf(t, "cats cat cats"))
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %+v", forms)
	}
	if forms[0].Word != "cat" || forms[0].Count != 1 || forms[1].Word != "cats" || forms[1].Count != 2 {
		t.Errorf("unexpected forms: %+v", forms)
	}
	if forms[0].Stem != "cat" || forms[1].Stem != "cat" {
		t.Errorf("expected both forms to stem to cat: %+v", forms)
	}
}
