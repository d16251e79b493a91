package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shigedangao/simmer/internal/domain"
	"github.com/shigedangao/simmer/internal/port"
	"go.etcd.io/bbolt"
)

var (
	bucketDocs   = []byte("docs")
	bucketGroups = []byte("groups")
	bucketMeta   = []byte("meta")
)

// BoltStore keeps documents and stem groups in a bbolt database. A document
// and the groups it contributes to are always written in one transaction.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketGroups, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type docMeta struct {
	Path    string        `json:"path"`
	ModTime int64         `json:"mod_time"`
	Forms   []domain.Form `json:"forms"`
}

type groupMeta struct {
	Forms map[string]int `json:"forms"`
	Total int            `json:"total"`
}

func (s *BoltStore) PutDoc(doc domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocs)

		if old, err := readDoc(docs, doc.ID); err != nil {
			return err
		} else if old != nil {
			if err := applyForms(tx.Bucket(bucketGroups), old.Forms, -1); err != nil {
				return err
			}
		}

		data, err := json.Marshal(docMeta{
			Path:    doc.Path,
			ModTime: doc.ModTime.Unix(),
			Forms:   doc.Forms,
		})
		if err != nil {
			return err
		}
		if err := docs.Put([]byte(doc.ID), data); err != nil {
			return err
		}

		return applyForms(tx.Bucket(bucketGroups), doc.Forms, 1)
	})
}

func (s *BoltStore) GetDoc(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		meta, err := readDoc(tx.Bucket(bucketDocs), id)
		if err != nil {
			return err
		}
		if meta == nil {
			return fmt.Errorf("document %s: %w", id, port.ErrNotFound)
		}
		doc = toDocument(id, *meta)
		return nil
	})
	return doc, err
}

func (s *BoltStore) DeleteDoc(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocs)
		meta, err := readDoc(docs, id)
		if err != nil || meta == nil {
			return err
		}
		if err := applyForms(tx.Bucket(bucketGroups), meta.Forms, -1); err != nil {
			return err
		}
		return docs.Delete([]byte(id))
	})
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, toDocument(string(k), meta))
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) GetGroup(stem string) (domain.StemGroup, error) {
	var group domain.StemGroup
	err := s.db.View(func(tx *bbolt.Tx) error {
		meta, err := readGroup(tx.Bucket(bucketGroups), stem)
		if err != nil {
			return err
		}
		if meta == nil {
			return fmt.Errorf("stem group %q: %w", stem, port.ErrNotFound)
		}
		group = domain.StemGroup{Stem: stem, Forms: meta.Forms, Total: meta.Total}
		return nil
	})
	return group, err
}

// ListGroups returns every stem group ordered by stem.
func (s *BoltStore) ListGroups() ([]domain.StemGroup, error) {
	var groups []domain.StemGroup
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGroups).ForEach(func(k, v []byte) error {
			var meta groupMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			groups = append(groups, domain.StemGroup{Stem: string(k), Forms: meta.Forms, Total: meta.Total})
			return nil
		})
	})
	return groups, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		stats.TotalDocs = tx.Bucket(bucketDocs).Stats().KeyN
		return tx.Bucket(bucketGroups).ForEach(func(_, v []byte) error {
			var meta groupMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			stats.TotalGroups++
			stats.TotalTokens += meta.Total
			return nil
		})
	})
	return stats, err
}

// applyForms adds (sign 1) or withdraws (sign -1) forms from their groups.
// Forms and groups whose count drops to zero are removed.
func applyForms(groups *bbolt.Bucket, forms []domain.Form, sign int) error {
	for _, f := range forms {
		meta, err := readGroup(groups, f.Stem)
		if err != nil {
			return err
		}
		if meta == nil {
			meta = &groupMeta{Forms: make(map[string]int)}
		}

		meta.Forms[f.Word] += sign * f.Count
		meta.Total += sign * f.Count
		if meta.Forms[f.Word] <= 0 {
			delete(meta.Forms, f.Word)
		}

		if meta.Total <= 0 || len(meta.Forms) == 0 {
			if err := groups.Delete([]byte(f.Stem)); err != nil {
				return err
			}
			continue
		}

		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := groups.Put([]byte(f.Stem), data); err != nil {
			return err
		}
	}
	return nil
}

func readDoc(docs *bbolt.Bucket, id string) (*docMeta, error) {
	data := docs.Get([]byte(id))
	if data == nil {
		return nil, nil
	}
	var meta docMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func readGroup(groups *bbolt.Bucket, stem string) (*groupMeta, error) {
	data := groups.Get([]byte(stem))
	if data == nil {
		return nil, nil
	}
	var meta groupMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	if meta.Forms == nil {
		meta.Forms = make(map[string]int)
	}
	return &meta, nil
}

func toDocument(id string, meta docMeta) domain.Document {
	return domain.Document{
		ID:      id,
		Path:    meta.Path,
		ModTime: time.Unix(meta.ModTime, 0),
		Forms:   meta.Forms,
	}
}
