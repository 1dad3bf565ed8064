package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const (
	accountCacheKeyPrefix = "account:"
	accountCacheTTL       = 15 * time.Minute
)

type AccountCache struct {
	client *Client
	log    ports.Logger
}

func NewAccountCache(client *Client, log ports.Logger) *AccountCache {
	return &AccountCache{
		client: client,
		log:    log,
	}
}

func (a *AccountCache) GetAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	var account model.Account
	if err := a.client.Get(ctx, a.getAccountKey(accountID), &account); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		a.log.Error("Failed to get account from cache",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get account from cache: %w", err)
	}
	return &account, nil
}

func (a *AccountCache) SetAccount(ctx context.Context, account *model.Account) error {
	if account == nil {
		return fmt.Errorf("account cannot be nil")
	}

	if err := a.client.Set(ctx, a.getAccountKey(account.ID), account, accountCacheTTL); err != nil {
		a.log.Error("Failed to set account cache",
			slog.Int64("account_id", account.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set account cache: %w", err)
	}
	return nil
}

func (a *AccountCache) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := a.client.Delete(ctx, a.getAccountKey(accountID)); err != nil {
		a.log.Error("Failed to delete account from cache",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete account from cache: %w", err)
	}
	return nil
}

func (a *AccountCache) getAccountKey(accountID int64) string {
	return accountCacheKeyPrefix + strconv.FormatInt(accountID, 10)
}
