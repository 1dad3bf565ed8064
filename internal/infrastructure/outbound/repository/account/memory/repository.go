package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"

	"github.com/jackc/pgx/v5/pgtype"
)

type AccountRepository struct {
	log        ports.Logger
	mu         sync.RWMutex
	accounts   map[int64]*model.Account
	byUsername map[string]int64
	nextID     int64
}

func NewAccountRepository(log ports.Logger) *AccountRepository {
	return &AccountRepository{
		log:        log,
		accounts:   make(map[int64]*model.Account),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[account.Username]; taken {
		r.log.Debug("Username already taken", slog.String("username", account.Username))
		return nil, custom_errors.ErrUsernameTaken
	}

	newAccount := &model.Account{
		ID:           r.nextID,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Email:        account.Email,
		IsSuperuser:  account.IsSuperuser,
		DateJoined:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	r.nextID++

	r.accounts[newAccount.ID] = newAccount
	r.byUsername[newAccount.Username] = newAccount.ID

	result := *newAccount
	return &result, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[id]
	if !exists {
		r.log.Debug("Account not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}
	result := *account
	return &result, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byUsername[username]
	if !exists {
		r.log.Debug("Account not found by username", slog.String("username", username))
		return nil, custom_errors.ErrUserNotFound
	}
	result := *r.accounts[id]
	return &result, nil
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byUsername[username]
	return exists, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*model.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accountCopy := *account
		accounts = append(accounts, &accountCopy)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}
	account.PasswordHash = passwordHash

	result := *account
	return &result, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[id]
	if !exists {
		return custom_errors.ErrUserNotFound
	}
	delete(r.byUsername, account.Username)
	delete(r.accounts, id)
	return nil
}
