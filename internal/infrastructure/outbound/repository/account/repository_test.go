package account_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	account_repository "blog-service/internal/domain/ports/output/account"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/repository/account/memory"
)

func setupAccountTest(t *testing.T) account_repository.Repository {
	t.Helper()
	return memory.NewAccountRepository(logger.New("test"))
}

func TestAccountRepository_Create(t *testing.T) {
	repo := setupAccountTest(t)
	email := "alice@example.com"

	tests := []struct {
		name    string
		account *model.Account
		wantErr error
	}{
		{
			name:    "successful create",
			account: &model.Account{Username: "alice", PasswordHash: "hash", Email: &email},
		},
		{
			name:    "account without email",
			account: &model.Account{Username: "bob", PasswordHash: "hash"},
		},
		{
			name:    "duplicate username",
			account: &model.Account{Username: "alice", PasswordHash: "other"},
			wantErr: custom_errors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(context.Background(), tt.account)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.account.Username, got.Username)
			assert.Equal(t, tt.account.Email, got.Email)
			assert.True(t, got.DateJoined.Valid)
		})
	}
}

func TestAccountRepository_Lookup(t *testing.T) {
	repo := setupAccountTest(t)
	created, err := repo.Create(context.Background(), &model.Account{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	byID, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(context.Background(), "Alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountRepository_List(t *testing.T) {
	repo := setupAccountTest(t)
	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := repo.Create(context.Background(), &model.Account{Username: name, PasswordHash: "hash"})
		require.NoError(t, err)
	}

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
	assert.Equal(t, "carol", got[0].Username)
}

func TestAccountRepository_UpdatePassword(t *testing.T) {
	repo := setupAccountTest(t)
	created, err := repo.Create(context.Background(), &model.Account{Username: "alice", PasswordHash: "old"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "successful update", id: created.ID},
		{name: "account not found", id: 999, wantErr: custom_errors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.UpdatePassword(context.Background(), tt.id, "new")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new", got.PasswordHash)

			stored, err := repo.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, "new", stored.PasswordHash)
		})
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	repo := setupAccountTest(t)
	created, err := repo.Create(context.Background(), &model.Account{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), custom_errors.ErrUserNotFound)

	// The username is free again once the account is gone.
	_, err = repo.Create(context.Background(), &model.Account{Username: "alice", PasswordHash: "hash"})
	assert.NoError(t, err)
}
