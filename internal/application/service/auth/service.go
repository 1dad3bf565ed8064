package auth_service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	account_service "blog-service/internal/domain/ports/input/account"
	ports "blog-service/internal/domain/ports/output"
	session_store "blog-service/internal/domain/ports/output/session"

	"github.com/google/uuid"
)

type AuthService struct {
	sessions session_store.Store
	accounts account_service.Service
	secret   []byte
	ttl      time.Duration
	log      ports.Logger
	metrics  ports.MetricsProvider
	now      func() time.Time
}

func NewAuthService(
	sessions session_store.Store,
	accounts account_service.Service,
	secret string,
	ttl time.Duration,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *AuthService {
	return &AuthService{
		sessions: sessions,
		accounts: accounts,
		secret:   []byte(secret),
		ttl:      ttl,
		log:      log,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Load returns the stored session for id. Unknown, expired or unreadable
// sessions are replaced by a fresh anonymous one.
func (s *AuthService) Load(ctx context.Context, id string) *model.Session {
	if id != "" {
		session, err := s.sessions.Get(ctx, id)
		if err == nil {
			return session
		}
		if !errors.Is(err, custom_errors.ErrSessionNotFound) {
			s.log.Warn("Failed to load session", slog.String("error", err.Error()))
		}
	}
	return s.newSession()
}

func (s *AuthService) Save(ctx context.Context, session *model.Session) error {
	session.ExpiresAt = s.now().Add(s.ttl)
	return s.sessions.Save(ctx, session)
}

// Login verifies the credentials and binds the account to a new session id.
// Pending flashes carry over from the previous session.
func (s *AuthService) Login(ctx context.Context, session *model.Session, username, password string) (*model.Session, *model.Account, error) {
	account, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		s.metrics.IncrementAuthAttempts(false)
		s.log.Info("Login failed", slog.String("username", username))
		return session, nil, err
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.log.Warn("Failed to drop previous session", slog.String("error", err.Error()))
	}

	rotated := s.newSession()
	rotated.AccountID = account.ID
	rotated.AuthHash = s.fingerprint(account)
	rotated.Flashes = session.Flashes

	if err := s.Save(ctx, rotated); err != nil {
		s.log.Error("Failed to save session", slog.String("error", err.Error()))
		return session, nil, err
	}

	s.metrics.IncrementAuthAttempts(true)
	s.log.Info("Login succeeded", slog.Int64("account_id", account.ID))
	return rotated, account, nil
}

// Logout discards the session and returns a fresh anonymous one.
func (s *AuthService) Logout(ctx context.Context, session *model.Session) (*model.Session, error) {
	if session != nil {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			return s.newSession(), err
		}
		if session.IsAuthenticated() {
			s.log.Info("Logged out", slog.Int64("account_id", session.AccountID))
		}
	}
	return s.newSession(), nil
}

// Identify resolves the session to its account. A session whose account is
// gone, or whose password changed after login, is downgraded to anonymous.
func (s *AuthService) Identify(ctx context.Context, session *model.Session) (*model.Account, error) {
	if !session.IsAuthenticated() {
		return nil, nil
	}

	account, err := s.accounts.GetAccount(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Session bound to missing account", slog.Int64("account_id", session.AccountID))
			s.clear(session)
			return nil, nil
		}
		return nil, err
	}

	if !hmac.Equal([]byte(s.fingerprint(account)), []byte(session.AuthHash)) {
		s.log.Debug("Session invalidated by password change", slog.Int64("account_id", account.ID))
		s.clear(session)
		return nil, nil
	}
	return account, nil
}

// RefreshSession rebinds the session to the account's current password so
// it survives a password change made by its owner.
func (s *AuthService) RefreshSession(ctx context.Context, session *model.Session, account *model.Account) error {
	session.AccountID = account.ID
	session.AuthHash = s.fingerprint(account)
	return s.Save(ctx, session)
}

func (s *AuthService) fingerprint(account *model.Account) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(account.PasswordHash))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *AuthService) newSession() *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		ExpiresAt: s.now().Add(s.ttl),
	}
}

func (s *AuthService) clear(session *model.Session) {
	session.AccountID = 0
	session.AuthHash = ""
}

// ReportActiveSessions publishes the live session count now and then on every
// tick until ctx is done.
func (s *AuthService) ReportActiveSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.reportActiveSessions(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *AuthService) reportActiveSessions(ctx context.Context) {
	count, err := s.sessions.Count(ctx)
	if err != nil {
		s.log.Warn("Failed to count sessions", slog.String("error", err.Error()))
		return
	}
	s.metrics.SetActiveSessions(count)
}
