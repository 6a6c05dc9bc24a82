// Package memstore provides in-memory repository implementations for tests
// and local development without a database.
package memstore

import (
	"context"
	"sync"

	"github.com/surveypulse/surveypulse/internal/domain"
)

// ResponseStore is an in-memory domain.ResponseRepository. Appends assign
// sequential IDs; reads return a copy of the current snapshot. ReadErr, when
// set, makes ListAll fail, which exercises the empty-collection fallback.
type ResponseStore struct {
	mu        sync.Mutex
	responses []domain.Response
	nextID    int64

	ReadErr error
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{nextID: 1}
}

func (s *ResponseStore) Append(_ context.Context, r *domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.responses = append(s.responses, *r)
	return nil
}

func (s *ResponseStore) ListAll(_ context.Context) ([]domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	out := make([]domain.Response, len(s.responses))
	copy(out, s.responses)
	return out, nil
}

// LeaderStore is an in-memory domain.LeaderRepository.
type LeaderStore struct {
	mu        sync.Mutex
	responses []domain.LeaderResponse
	nextID    int64

	ReadErr error
}

func NewLeaderStore() *LeaderStore {
	return &LeaderStore{nextID: 1}
}

func (s *LeaderStore) Append(_ context.Context, lr *domain.LeaderResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lr.ID = s.nextID
	s.nextID++
	s.responses = append(s.responses, *lr)
	return nil
}

func (s *LeaderStore) ListAll(_ context.Context) ([]domain.LeaderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	out := make([]domain.LeaderResponse, len(s.responses))
	copy(out, s.responses)
	return out, nil
}
