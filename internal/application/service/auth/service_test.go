package auth_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	account_service "blog-service/internal/application/service/account"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	account_memory "blog-service/internal/infrastructure/outbound/repository/account/memory"
	comment_memory "blog-service/internal/infrastructure/outbound/repository/comment/memory"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	bcrypt_hasher "blog-service/internal/infrastructure/outbound/security/bcrypt"
	session_memory "blog-service/internal/infrastructure/outbound/session/memory"
)

type fixture struct {
	auth     *AuthService
	accounts *account_service.AccountService
	store    *session_memory.Store
	alice    *model.Account
}

func setupAuthService(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	accountRepo := account_memory.NewAccountRepository(log)
	uow := memory.NewUnitOfWork(accountRepo, post_memory.NewPostRepository(log), comment_memory.NewCommentRepository(log))
	accounts := account_service.NewAccountService(accountRepo, uow, bcrypt_hasher.NewHasher(bcrypt.MinCost), log, metrics)
	store := session_memory.NewStore()

	alice, err := accounts.Register(context.Background(), &model.RegisterAccountDTO{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)

	return &fixture{
		auth:     NewAuthService(store, accounts, "test-secret", time.Hour, log, metrics),
		accounts: accounts,
		store:    store,
		alice:    alice,
	}
}

func (f *fixture) login(t *testing.T) *model.Session {
	t.Helper()
	session, _, err := f.auth.Login(context.Background(), f.auth.Load(context.Background(), ""), "alice", "wonderland")
	require.NoError(t, err)
	return session
}

func TestAuthService_Load(t *testing.T) {
	f := setupAuthService(t)
	ctx := context.Background()

	fresh := f.auth.Load(ctx, "")
	assert.NotEmpty(t, fresh.ID)
	assert.False(t, fresh.IsAuthenticated())

	unknown := f.auth.Load(ctx, "does-not-exist")
	assert.NotEqual(t, "does-not-exist", unknown.ID)

	session := f.login(t)
	loaded := f.auth.Load(ctx, session.ID)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, f.alice.ID, loaded.AccountID)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "Success", username: "alice", password: "wonderland"},
		{name: "Wrong password", username: "alice", password: "looking-glass", wantErr: custom_errors.ErrInvalidCredentials},
		{name: "Unknown user", username: "hatter", password: "wonderland", wantErr: custom_errors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupAuthService(t)
			ctx := context.Background()

			anonymous := f.auth.Load(ctx, "")
			anonymous.AddFlash(model.FlashInfo, "carried over")
			require.NoError(t, f.auth.Save(ctx, anonymous))

			session, account, err := f.auth.Login(ctx, anonymous, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				assert.Same(t, anonymous, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, f.alice.ID, account.ID)
			assert.NotEqual(t, anonymous.ID, session.ID, "session id must rotate on login")
			assert.True(t, session.IsAuthenticated())
			assert.Len(t, session.Flashes, 1)

			_, err = f.store.Get(ctx, anonymous.ID)
			assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := setupAuthService(t)
	ctx := context.Background()
	session := f.login(t)

	fresh, err := f.auth.Logout(ctx, session)
	require.NoError(t, err)
	assert.False(t, fresh.IsAuthenticated())
	assert.NotEqual(t, session.ID, fresh.ID)

	_, err = f.store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)

	// Logging out an anonymous session is harmless.
	_, err = f.auth.Logout(ctx, fresh)
	assert.NoError(t, err)
}

func TestAuthService_Identify(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(t *testing.T, f *fixture, session *model.Session)
		wantFound bool
	}{
		{
			name:      "Valid session",
			prepare:   func(*testing.T, *fixture, *model.Session) {},
			wantFound: true,
		},
		{
			name: "Anonymous session",
			prepare: func(_ *testing.T, _ *fixture, session *model.Session) {
				session.AccountID = 0
			},
		},
		{
			name: "Password changed elsewhere",
			prepare: func(t *testing.T, f *fixture, _ *model.Session) {
				_, err := f.accounts.ChangePassword(context.Background(), f.alice, f.alice.ID, "new-pass")
				require.NoError(t, err)
			},
		},
		{
			name: "Account deleted",
			prepare: func(t *testing.T, f *fixture, _ *model.Session) {
				require.NoError(t, f.accounts.DeleteAccount(context.Background(), f.alice, f.alice.ID))
			},
		},
		{
			name: "Tampered auth hash",
			prepare: func(_ *testing.T, _ *fixture, session *model.Session) {
				session.AuthHash = "forged"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupAuthService(t)
			session := f.login(t)
			tt.prepare(t, f, session)

			account, err := f.auth.Identify(context.Background(), session)
			require.NoError(t, err)
			if !tt.wantFound {
				assert.Nil(t, account)
				assert.False(t, session.IsAuthenticated())
				return
			}
			require.NotNil(t, account)
			assert.Equal(t, f.alice.ID, account.ID)
		})
	}
}

func TestAuthService_RefreshSession(t *testing.T) {
	f := setupAuthService(t)
	ctx := context.Background()

	current := f.login(t)
	other := f.login(t)

	updated, err := f.accounts.ChangePassword(ctx, f.alice, f.alice.ID, "new-pass")
	require.NoError(t, err)
	require.NoError(t, f.auth.RefreshSession(ctx, current, updated))

	account, err := f.auth.Identify(ctx, f.auth.Load(ctx, current.ID))
	require.NoError(t, err)
	assert.NotNil(t, account, "the session that changed the password stays valid")

	account, err = f.auth.Identify(ctx, f.auth.Load(ctx, other.ID))
	require.NoError(t, err)
	assert.Nil(t, account, "other sessions are invalidated")
}

type sessionGauge struct {
	ports.MetricsProvider
	values []int
}

func (g *sessionGauge) SetActiveSessions(count int) {
	g.values = append(g.values, count)
}

func TestAuthService_ReportActiveSessions(t *testing.T) {
	f := setupAuthService(t)
	f.login(t)
	f.login(t)

	gauge := &sessionGauge{MetricsProvider: prometheus.NewPrometheusMetricsProvider()}
	reporter := NewAuthService(f.store, f.accounts, "test-secret", time.Hour, logger.New("test"), gauge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reporter.ReportActiveSessions(ctx, time.Hour)

	assert.Equal(t, []int{2}, gauge.values)
}

func TestAuthService_LoginDoesNotCountSessions(t *testing.T) {
	f := setupAuthService(t)

	gauge := &sessionGauge{MetricsProvider: prometheus.NewPrometheusMetricsProvider()}
	auth := NewAuthService(f.store, f.accounts, "test-secret", time.Hour, logger.New("test"), gauge)

	session, _, err := auth.Login(context.Background(), auth.Load(context.Background(), ""), "alice", "wonderland")
	require.NoError(t, err)
	_, err = auth.Logout(context.Background(), session)
	require.NoError(t, err)

	assert.Empty(t, gauge.values)
}
