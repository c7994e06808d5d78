package store

import (
	"context"
	"strings"
	"sync"

	"amity/internal/identity/models"
	id "amity/pkg/domain"
	"amity/pkg/platform/sentinel"
)

// MemoryStore keeps user records in process memory. It favors clarity over
// performance and is the default when no DATABASE_URL is configured.
//
// Records are deep-copied on the way in and out so callers never alias store
// state. An insertion-order index keeps List deterministic.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[id.UserID]*models.User
	byEmail map[string]id.UserID
	order   []id.UserID
}

// NewMemory constructs an empty in-memory user store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		users:   make(map[id.UserID]*models.User),
		byEmail: make(map[string]id.UserID),
	}
}

func (s *MemoryStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(user)
}

func (s *MemoryStore) SavePair(_ context.Context, a, b *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Single lock makes the pair atomic with respect to readers. Both records
	// are validated up front so a conflict on either leaves neither applied.
	if normalizeEmail(a.Email) == normalizeEmail(b.Email) && a.ID != b.ID {
		return sentinel.ErrConflict
	}
	if err := s.conflictLocked(a); err != nil {
		return err
	}
	if err := s.conflictLocked(b); err != nil {
		return err
	}
	if err := s.saveLocked(a); err != nil {
		return err
	}
	return s.saveLocked(b)
}

func (s *MemoryStore) conflictLocked(user *models.User) error {
	if owner, ok := s.byEmail[normalizeEmail(user.Email)]; ok && owner != user.ID {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *MemoryStore) saveLocked(user *models.User) error {
	email := normalizeEmail(user.Email)
	if owner, ok := s.byEmail[email]; ok && owner != user.ID {
		return sentinel.ErrConflict
	}
	if existing, ok := s.users[user.ID]; ok {
		delete(s.byEmail, normalizeEmail(existing.Email))
	} else {
		s.order = append(s.order, user.ID)
	}
	s.users[user.ID] = user.Clone()
	s.byEmail[email] = user.ID
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[userID]; ok {
		return user.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID, ok := s.byEmail[normalizeEmail(email)]; ok {
		return s.users[userID].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *MemoryStore) SearchByUsername(_ context.Context, pattern string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(pattern)
	matches := make([]*models.User, 0)
	for _, userID := range s.order {
		user := s.users[userID]
		if strings.Contains(strings.ToLower(user.Username), needle) {
			matches = append(matches, user.Clone())
		}
	}
	return matches, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*models.User, 0, len(s.order))
	for _, userID := range s.order {
		users = append(users, s.users[userID].Clone())
	}
	return users, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
