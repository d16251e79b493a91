package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
)

// ProgressFunc is called after every file considered by Index.
type ProgressFunc func(processed, total int, currentFile string)

// IndexUseCase handles stem index building.
type IndexUseCase struct {
	store     port.GroupStore
	walker    port.FileWalker
	reader    port.FileReader
	tokenizer port.Tokenizer
}

// NewIndexUseCase creates a new index use case.
func NewIndexUseCase(
	store port.GroupStore,
	walker port.FileWalker,
	reader port.FileReader,
	tokenizer port.Tokenizer,
) *IndexUseCase {
	return &IndexUseCase{
		store:     store,
		walker:    walker,
		reader:    reader,
		tokenizer: tokenizer,
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed int          `json:"files_indexed"`
	FilesSkipped int          `json:"files_skipped"`
	FilesDeleted int          `json:"files_deleted"`
	Stats        domain.Stats `json:"stats"`
	Errors       []string     `json:"errors,omitempty"`
}

// Index stems the words of every file under root into stem groups.
// Files unchanged since the last run are skipped and files that disappeared
// are withdrawn from the index. A file that fails is reported in
// IndexResult.Errors and does not stop the run.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existingDocs, err := u.store.ListDocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}

	existingMap := make(map[string]domain.Document, len(existingDocs))
	for _, doc := range existingDocs {
		existingMap[doc.Path] = doc
	}

	seenPaths := make(map[string]bool, len(files))

	for i, file := range files {
		seenPaths[file.Path] = true
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		if existing, ok := existingMap[file.Path]; ok && existing.ModTime.Unix() >= file.ModTime {
			result.FilesSkipped++
			continue
		}

		if err := u.indexFile(file); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", file.Path, err))
			continue
		}
		result.FilesIndexed++
	}

	for path, doc := range existingMap {
		if seenPaths[path] {
			continue
		}
		if err := u.store.DeleteDoc(doc.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
		} else {
			result.FilesDeleted++
		}
	}

	stats, err := u.store.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	result.Stats = stats

	return result, nil
}

// indexFile stems a single file and stores it, replacing any older version.
func (u *IndexUseCase) indexFile(file port.FileInfo) error {
	content, err := u.reader.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return u.IndexContent(file.Path, content, time.Unix(file.ModTime, 0))
}

// IndexContent stems content and stores it under path, replacing any older
// version of the same path.
func (u *IndexUseCase) IndexContent(path, content string, modTime time.Time) error {
	terms, err := u.tokenizer.Terms(content)
	if err != nil {
		return err
	}

	doc := domain.Document{
		ID:      generateDocID(path),
		Path:    path,
		ModTime: modTime,
		Forms:   countForms(terms),
	}

	if err := u.store.PutDoc(doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// countForms folds repeated terms into one Form per surface word, ordered by
// word. Terms whose stem is empty ("s" stems to "") are dropped.
func countForms(terms []domain.Term) []domain.Form {
	counts := make(map[string]*domain.Form)
	for _, t := range terms {
		if t.Stem == "" {
			continue
		}
		if f, ok := counts[t.Word]; ok {
			f.Count++
			continue
		}
		counts[t.Word] = &domain.Form{Word: t.Word, Stem: t.Stem, Count: 1}
	}

	forms := make([]domain.Form, 0, len(counts))
	for _, f := range counts {
		forms = append(forms, *f)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].Word < forms[j].Word })
	return forms
}

// generateDocID creates a unique ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
