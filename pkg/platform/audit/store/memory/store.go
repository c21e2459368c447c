// Package memory is the in-process audit store.
package memory

import (
	"context"
	"sync"

	id "contium/pkg/domain"
	audit "contium/pkg/platform/audit"
)

// InMemoryStore keeps events in append order.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByActor(_ context.Context, actorID id.UserID) ([]audit.Event, error) {
	return s.filter(func(e audit.Event) bool { return e.ActorID == actorID }), nil
}

func (s *InMemoryStore) ListByAction(_ context.Context, action audit.AuditEvent) ([]audit.Event, error) {
	return s.filter(func(e audit.Event) bool { return e.Action == string(action) }), nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	return s.filter(func(audit.Event) bool { return true }), nil
}

func (s *InMemoryStore) filter(keep func(audit.Event) bool) []audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.Event, 0)
	for _, e := range s.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
