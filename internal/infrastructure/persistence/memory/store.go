// Package memory implements the entity stores on a mutex-guarded map. It
// honors the same contract as the postgres package and backs the service in
// memory mode as well as the service-level tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
)

// store holds shallow copies of entities so callers never share memory with
// the map. Entities are flat records, so a value copy is a full copy.
type store[T any] struct {
	entity string
	getID  func(*T) uuid.UUID
	setID  func(*T, uuid.UUID)

	mu    sync.RWMutex
	items map[uuid.UUID]T
}

func newStore[T any](entity string, getID func(*T) uuid.UUID, setID func(*T, uuid.UUID)) *store[T] {
	return &store[T]{
		entity: entity,
		getID:  getID,
		setID:  setID,
		items:  make(map[uuid.UUID]T),
	}
}

func (s *store[T]) Save(ctx context.Context, e *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getID(e) == uuid.Nil {
		s.setID(e, uuid.New())
	}
	s.items[s.getID(e)] = *e
	return e, nil
}

func (s *store[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, domain.NewNotFoundError(s.entity, id)
	}
	return &item, nil
}

func (s *store[T]) FindAll(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*T, 0, len(s.items))
	for _, item := range s.items {
		item := item
		results = append(results, &item)
	}
	return results, nil
}

func (s *store[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}
