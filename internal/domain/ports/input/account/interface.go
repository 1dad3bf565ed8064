package account_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/account --outpkg mocks --filename AccountService.go
type Service interface {
	Register(ctx context.Context, dto *model.RegisterAccountDTO) (*model.Account, error)
	Authenticate(ctx context.Context, username, password string) (*model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	ChangePassword(ctx context.Context, actor *model.Account, targetID int64, password string) (*model.Account, error)
	DeleteAccount(ctx context.Context, actor *model.Account, targetID int64) error
	DescribeAccounts(ctx context.Context, actor *model.Account) (*model.AccountDirectory, error)
}
