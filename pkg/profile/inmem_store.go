package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore implements Store using in-memory storage
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

// NewInMemoryStore creates a new in-memory profile store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		profiles: make(map[uuid.UUID]Profile),
	}
}

// WriteProfile creates or replaces the profile record for a user
func (s *InMemoryStore) WriteProfile(ctx context.Context, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[p.UserID] = p
	return nil
}

// ReadProfile retrieves the profile record for a user
func (s *InMemoryStore) ReadProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// TouchLastLogin updates the last_login field of an existing profile
func (s *InMemoryStore) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return ErrProfileNotFound
	}
	p.LastLogin = at
	s.profiles[userID] = p
	return nil
}
