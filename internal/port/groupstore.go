package port

import (
	"errors"

	"github.com/shigedangao/simmer/internal/domain"
)

// ErrNotFound is returned by stores when a document or stem group is absent.
var ErrNotFound = errors.New("not found")

// GroupStore persists indexed documents and the stem groups built from them.
type GroupStore interface {
	// PutDoc stores doc and merges its forms into the stem groups,
	// replacing the contribution of any earlier version of the same doc.
	PutDoc(doc domain.Document) error

	GetDoc(id string) (domain.Document, error)

	// DeleteDoc removes doc and withdraws its forms from the stem groups.
	DeleteDoc(id string) error

	ListDocs() ([]domain.Document, error)

	GetGroup(stem string) (domain.StemGroup, error)

	ListGroups() ([]domain.StemGroup, error)

	GetStats() (domain.Stats, error)

	Close() error
}
