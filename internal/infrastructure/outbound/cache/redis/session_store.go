package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions as JSON values that expire with the session.
type SessionStore struct {
	client *Client
	log    ports.Logger
}

func NewSessionStore(client *Client, log ports.Logger) *SessionStore {
	return &SessionStore{client: client, log: log}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := s.client.Get(ctx, sessionKeyPrefix+id, &session); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrSessionCorrupted, err)
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *model.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, session.ID)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, session, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Count scans the whole session keyspace. It backs the periodic
// active-sessions gauge and is kept off the request path.
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	return s.client.CountPattern(ctx, sessionKeyPrefix+"*")
}
