package inmemory

import (
	"context"
	"sync"
	"todoTracker/internal/logger"
	repo "todoTracker/internal/repository"

	"go.uber.org/zap"
)

type Store struct {
	partition string
	storage   map[string][]byte
	mtx       *sync.RWMutex
}

func New(partition string) *Store {
	return &Store{
		partition: partition,
		storage:   make(map[string][]byte),
		mtx:       &sync.RWMutex{},
	}
}

func (s *Store) HealthCheck(ctx context.Context) error {
	logger.Debug("Repository: Соединение стабильно", zap.String("partition", s.partition))
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.storage[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.storage[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.storage, key)
	return nil
}
