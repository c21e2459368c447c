// Package store keeps documents in process memory.
package store

import (
	"context"
	"sync"

	"contium/internal/document/models"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
)

// Error Contract:
// - FindByID and Update return ErrNotFound when the document does not exist
// - Save returns ErrConflict when the id is already taken
// - Returned documents are deep copies; callers never alias stored state

var (
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "document not found")
	ErrConflict = dErrors.New(dErrors.CodeConflict, "document already exists")
)

// MutateFunc edits a document in place. Returning an error discards the edit.
type MutateFunc func(doc *models.Document) error

// InMemoryStore holds documents in insertion order.
type InMemoryStore struct {
	mu    sync.RWMutex
	docs  map[id.DocumentID]*models.Document
	order []id.DocumentID
}

// New constructs an empty in-memory document store.
func New() *InMemoryStore {
	return &InMemoryStore{docs: make(map[id.DocumentID]*models.Document)}
}

func (s *InMemoryStore) Save(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[doc.ID]; exists {
		return ErrConflict
	}
	s.docs[doc.ID] = doc.Clone()
	s.order = append(s.order, doc.ID)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, docID id.DocumentID) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[docID]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

// Update applies fn to a copy of the document under the write lock and
// stores the copy only when fn succeeds, so check-then-set sequences are atomic.
func (s *InMemoryStore) Update(_ context.Context, docID id.DocumentID, fn MutateFunc) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.docs[docID]
	if !ok {
		return nil, ErrNotFound
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = docID
	s.docs[docID] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Document, error) {
	return s.filter(func(*models.Document) bool { return true }), nil
}

func (s *InMemoryStore) ListByType(_ context.Context, t models.Type) ([]*models.Document, error) {
	return s.filter(func(d *models.Document) bool { return d.Type == t }), nil
}

func (s *InMemoryStore) ListByRegistrant(_ context.Context, userID id.UserID) ([]*models.Document, error) {
	return s.filter(func(d *models.Document) bool { return d.RegisteredBy.ID == userID }), nil
}

func (s *InMemoryStore) ListByStatus(_ context.Context, status models.Status) ([]*models.Document, error) {
	return s.filter(func(d *models.Document) bool { return d.Status == status }), nil
}

func (s *InMemoryStore) filter(keep func(*models.Document) bool) []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Document, 0)
	for _, docID := range s.order {
		if doc := s.docs[docID]; keep(doc) {
			out = append(out, doc.Clone())
		}
	}
	return out
}
