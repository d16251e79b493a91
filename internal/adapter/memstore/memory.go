package memstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
)

// MemoryStore is an in-process port.GroupStore for tests and one-shot runs.
type MemoryStore struct {
	mu     sync.RWMutex
	docs   map[string]domain.Document
	groups map[string]*domain.StemGroup
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:   make(map[string]domain.Document),
		groups: make(map[string]*domain.StemGroup),
	}
}

func (s *MemoryStore) PutDoc(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.docs[doc.ID]; ok {
		s.applyForms(old.Forms, -1)
	}
	s.docs[doc.ID] = doc
	s.applyForms(doc.Forms, 1)
	return nil
}

func (s *MemoryStore) GetDoc(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, port.ErrNotFound)
	}
	return doc, nil
}

func (s *MemoryStore) DeleteDoc(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[id]; ok {
		s.applyForms(doc.Forms, -1)
		delete(s.docs, id)
	}
	return nil
}

func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MemoryStore) GetGroup(stem string) (domain.StemGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[stem]
	if !ok {
		return domain.StemGroup{}, fmt.Errorf("stem group %q: %w", stem, port.ErrNotFound)
	}
	return copyGroup(g), nil
}

func (s *MemoryStore) ListGroups() ([]domain.StemGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make([]domain.StemGroup, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, copyGroup(g))
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Stem < groups[j].Stem })
	return groups, nil
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.Stats{TotalDocs: len(s.docs), TotalGroups: len(s.groups)}
	for _, g := range s.groups {
		stats.TotalTokens += g.Total
	}
	return stats, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) applyForms(forms []domain.Form, sign int) {
	for _, f := range forms {
		g, ok := s.groups[f.Stem]
		if !ok {
			g = &domain.StemGroup{Stem: f.Stem, Forms: make(map[string]int)}
			s.groups[f.Stem] = g
		}
		g.Forms[f.Word] += sign * f.Count
		g.Total += sign * f.Count
		if g.Forms[f.Word] <= 0 {
			delete(g.Forms, f.Word)
		}
		if g.Total <= 0 || len(g.Forms) == 0 {
			delete(s.groups, f.Stem)
		}
	}
}

func copyGroup(g *domain.StemGroup) domain.StemGroup {
	forms := make(map[string]int, len(g.Forms))
	for w, n := range g.Forms {
		forms[w] = n
	}
	return domain.StemGroup{Stem: g.Stem, Forms: forms, Total: g.Total}
}
