package memory

import (
	"context"
	"sync"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*model.Session),
		now:      time.Now,
	}
}

func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, custom_errors.ErrSessionNotFound
	}
	if !session.ExpiresAt.After(s.now()) {
		_ = s.Delete(ctx, id)
		return nil, custom_errors.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (s *Store) Save(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Count returns the number of unexpired sessions and evicts the rest.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, id)
		}
	}
	return len(s.sessions), nil
}

func cloneSession(session *model.Session) *model.Session {
	c := *session
	if session.Flashes != nil {
		c.Flashes = append([]model.Flash(nil), session.Flashes...)
	}
	return &c
}
