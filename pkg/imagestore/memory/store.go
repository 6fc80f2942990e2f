package memory

import (
	"context"
	"sync"

	"techmart-be/internal/entity"
)

type Store struct {
	mu     sync.RWMutex
	images map[string][]byte
}

func NewStore() *Store {
	return &Store{images: make(map[string][]byte)}
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[key] = append([]byte(nil), data...)
	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.images[key]
	if !ok {
		return nil, entity.ErrImageNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, key)
	return nil
}
