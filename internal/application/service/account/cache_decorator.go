package account_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	account_service "blog-service/internal/domain/ports/input/account"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/cache"
)

type AccountServiceCacheDecorator struct {
	service      account_service.Service
	accountCache cache.AccountCache
	postCache    cache.PostCache
	log          output.Logger
}

func NewAccountServiceCacheDecorator(
	service account_service.Service,
	accountCache cache.AccountCache,
	postCache cache.PostCache,
	log output.Logger,
) account_service.Service {
	return &AccountServiceCacheDecorator{
		service:      service,
		accountCache: accountCache,
		postCache:    postCache,
		log:          log,
	}
}

func (d *AccountServiceCacheDecorator) Register(ctx context.Context, dto *model.RegisterAccountDTO) (*model.Account, error) {
	return d.service.Register(ctx, dto)
}

func (d *AccountServiceCacheDecorator) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	return d.service.Authenticate(ctx, username, password)
}

func (d *AccountServiceCacheDecorator) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	cached, err := d.accountCache.GetAccount(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get account from cache",
			slog.Int64("account_id", id),
			slog.String("error", err.Error()))
	}

	account, err := d.service.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.accountCache.SetAccount(ctx, account); err != nil {
		d.log.Warn("Failed to cache account",
			slog.Int64("account_id", id),
			slog.String("error", err.Error()))
	}
	return account, nil
}

func (d *AccountServiceCacheDecorator) ChangePassword(ctx context.Context, actor *model.Account, targetID int64, password string) (*model.Account, error) {
	updated, err := d.service.ChangePassword(ctx, actor, targetID, password)
	if err != nil {
		return nil, err
	}
	d.invalidateAccount(ctx, targetID)
	return updated, nil
}

func (d *AccountServiceCacheDecorator) DeleteAccount(ctx context.Context, actor *model.Account, targetID int64) error {
	if err := d.service.DeleteAccount(ctx, actor, targetID); err != nil {
		return err
	}
	d.invalidateAccount(ctx, targetID)

	// Cached posts may embed comments written by the deleted account.
	if err := d.postCache.DeleteAll(ctx); err != nil {
		d.log.Warn("Failed to flush post cache after account deletion",
			slog.Int64("account_id", targetID),
			slog.String("error", err.Error()))
	}
	return nil
}

func (d *AccountServiceCacheDecorator) DescribeAccounts(ctx context.Context, actor *model.Account) (*model.AccountDirectory, error) {
	return d.service.DescribeAccounts(ctx, actor)
}

func (d *AccountServiceCacheDecorator) invalidateAccount(ctx context.Context, id int64) {
	if err := d.accountCache.DeleteAccount(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate account cache",
			slog.Int64("account_id", id),
			slog.String("error", err.Error()))
	}
}
