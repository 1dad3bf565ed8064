package account_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	account_memory "blog-service/internal/infrastructure/outbound/repository/account/memory"
	comment_memory "blog-service/internal/infrastructure/outbound/repository/comment/memory"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	bcrypt_hasher "blog-service/internal/infrastructure/outbound/security/bcrypt"
	"blog-service/mocks"
)

type fixture struct {
	service  *AccountService
	accounts *account_memory.AccountRepository
	posts    *post_memory.PostRepository
	comments *comment_memory.CommentRepository
}

func setupAccountService(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("test")
	accounts := account_memory.NewAccountRepository(log)
	posts := post_memory.NewPostRepository(log)
	comments := comment_memory.NewCommentRepository(log)
	uow := memory.NewUnitOfWork(accounts, posts, comments)

	return &fixture{
		service:  NewAccountService(accounts, uow, bcrypt_hasher.NewHasher(bcrypt.MinCost), log, prometheus.NewPrometheusMetricsProvider()),
		accounts: accounts,
		posts:    posts,
		comments: comments,
	}
}

func (f *fixture) register(t *testing.T, username string, superuser bool) *model.Account {
	t.Helper()
	account, err := f.service.Register(context.Background(), &model.RegisterAccountDTO{
		Username:    username,
		Password:    username + "-pass",
		IsSuperuser: superuser,
	})
	require.NoError(t, err)
	return account
}

func TestAccountService_Register(t *testing.T) {
	f := setupAccountService(t)
	email := "alice@example.com"

	tests := []struct {
		name    string
		dto     *model.RegisterAccountDTO
		wantErr error
	}{
		{
			name: "Success",
			dto:  &model.RegisterAccountDTO{Username: "alice", Password: "pw", Email: &email},
		},
		{
			name:    "Duplicate username",
			dto:     &model.RegisterAccountDTO{Username: "alice", Password: "other"},
			wantErr: custom_errors.ErrUsernameTaken,
		},
		{
			name: "Usernames are case sensitive",
			dto:  &model.RegisterAccountDTO{Username: "Alice", Password: "pw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.Register(context.Background(), tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dto.Username, got.Username)
			assert.NotEqual(t, tt.dto.Password, got.PasswordHash)
			assert.False(t, got.IsSuperuser)
		})
	}

	all, err := f.accounts.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAccountService_Authenticate(t *testing.T) {
	f := setupAccountService(t)
	alice := f.register(t, "alice", false)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "Success", username: "alice", password: "alice-pass"},
		{name: "Wrong password", username: "alice", password: "nope", wantErr: custom_errors.ErrInvalidCredentials},
		{name: "Unknown user", username: "mallory", password: "alice-pass", wantErr: custom_errors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, alice.ID, got.ID)
		})
	}
}

func TestAccountService_ChangePassword(t *testing.T) {
	f := setupAccountService(t)
	alice := f.register(t, "alice", false)
	bob := f.register(t, "bob", false)
	root := f.register(t, "root", true)

	tests := []struct {
		name     string
		actor    *model.Account
		targetID int64
		wantErr  error
	}{
		{name: "Owner changes own password", actor: alice, targetID: alice.ID},
		{name: "Superuser changes another password", actor: root, targetID: bob.ID},
		{name: "Other user is denied", actor: bob, targetID: alice.ID, wantErr: custom_errors.ErrForbidden},
		{name: "Anonymous is denied", actor: nil, targetID: alice.ID, wantErr: custom_errors.ErrForbidden},
		{name: "Unknown target", actor: root, targetID: 999, wantErr: custom_errors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.ChangePassword(context.Background(), tt.actor, tt.targetID, "fresh-pass")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.targetID, got.ID)

			_, err = f.service.Authenticate(context.Background(), got.Username, "fresh-pass")
			assert.NoError(t, err)
		})
	}

	_, err := f.service.Authenticate(context.Background(), "alice", "alice-pass")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	f := setupAccountService(t)
	ctx := context.Background()
	alice := f.register(t, "alice", false)
	bob := f.register(t, "bob", false)
	root := f.register(t, "root", true)

	alicePost, err := f.posts.Create(ctx, &model.Post{AuthorID: alice.ID, Title: "a", Content: "a"})
	require.NoError(t, err)
	bobPost, err := f.posts.Create(ctx, &model.Post{AuthorID: bob.ID, Title: "b", Content: "b"})
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, &model.Comment{PostID: alicePost.ID, AuthorID: bob.ID, Content: "on alice"})
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, &model.Comment{PostID: bobPost.ID, AuthorID: alice.ID, Content: "by alice"})
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, &model.Comment{PostID: bobPost.ID, AuthorID: bob.ID, Content: "by bob"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeleteAccount(ctx, bob, alice.ID), custom_errors.ErrForbidden)
	assert.ErrorIs(t, f.service.DeleteAccount(ctx, root, 999), custom_errors.ErrUserNotFound)

	require.NoError(t, f.service.DeleteAccount(ctx, root, alice.ID))

	_, err = f.accounts.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	_, err = f.posts.GetByID(ctx, alicePost.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	onAlice, err := f.comments.ListByPost(ctx, alicePost.ID)
	require.NoError(t, err)
	assert.Empty(t, onAlice)

	onBob, err := f.comments.ListByPost(ctx, bobPost.ID)
	require.NoError(t, err)
	require.Len(t, onBob, 1)
	assert.Equal(t, "by bob", onBob[0].Content)

	require.NoError(t, f.service.DeleteAccount(ctx, bob, bob.ID))
	_, err = f.accounts.GetByID(ctx, bob.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}

func TestAccountService_DeleteAccount_BeginError(t *testing.T) {
	log := logger.New("test")
	accounts := account_memory.NewAccountRepository(log)
	uow := mocks.NewUnitOfWork(t)
	uow.On("Begin", mock.Anything).Return(nil, errors.New("db down"))

	service := NewAccountService(accounts, uow, bcrypt_hasher.NewHasher(bcrypt.MinCost), log, prometheus.NewPrometheusMetricsProvider())
	alice, err := service.Register(context.Background(), &model.RegisterAccountDTO{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	err = service.DeleteAccount(context.Background(), alice, alice.ID)
	assert.ErrorIs(t, err, custom_errors.ErrDatabaseTransaction)

	_, err = accounts.GetByID(context.Background(), alice.ID)
	assert.NoError(t, err)
}

func TestAccountService_DescribeAccounts(t *testing.T) {
	f := setupAccountService(t)
	email := "bob@example.com"
	alice := f.register(t, "alice", false)
	bob, err := f.service.Register(context.Background(), &model.RegisterAccountDTO{Username: "bob", Password: "pw", Email: &email})
	require.NoError(t, err)
	root := f.register(t, "root", true)

	tests := []struct {
		name      string
		actor     *model.Account
		wantIDs   []int64
		wantAdmin bool
		wantErr   error
	}{
		{name: "Regular user sees only self", actor: alice, wantIDs: []int64{alice.ID}},
		{name: "Superuser sees everyone", actor: root, wantIDs: []int64{alice.ID, bob.ID, root.ID}, wantAdmin: true},
		{name: "Anonymous caller", actor: nil, wantErr: custom_errors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.DescribeAccounts(context.Background(), tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdmin, got.IsAdmin)
			assert.Len(t, got.RegisteredUsers, len(tt.wantIDs))
			for _, id := range tt.wantIDs {
				assert.Contains(t, got.RegisteredUsers, id)
			}
		})
	}

	directory, err := f.service.DescribeAccounts(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, model.EmailPlaceholder, directory.RegisteredUsers[alice.ID].Email)
	assert.Equal(t, email, directory.RegisteredUsers[bob.ID].Email)
	assert.Len(t, directory.RegisteredUsers[bob.ID].DateJoined, len(model.DateJoinedLayout))
}
