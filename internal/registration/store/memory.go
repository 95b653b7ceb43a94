// Package store provides UserStore implementations: in-memory for tests and
// local development, PostgreSQL and Redis for real deployments. Every
// implementation enforces email uniqueness itself; the service's lookup is
// best-effort only.
package store

import (
	"context"
	"strings"
	"sync"

	"registrar/internal/registration/models"
	"registrar/pkg/platform/sentinel"
)

// InMemory keeps users in a map keyed by lowercased email. It intentionally
// favors clarity over performance.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]*models.User)}
}

func (s *InMemory) FindByEmail(_ context.Context, email models.Email) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[emailKey(email)]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

// CreateIfEmailAvailable inserts the user unless the email is taken. Check
// and insert happen under one lock, so concurrent duplicates cannot both
// succeed.
func (s *InMemory) CreateIfEmailAvailable(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(user.Email)
	if _, ok := s.users[key]; ok {
		return sentinel.ErrAlreadyUsed
	}
	copied := *user
	s.users[key] = &copied
	return nil
}

func emailKey(email models.Email) string {
	return strings.ToLower(string(email))
}
