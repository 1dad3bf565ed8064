package account_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/account --outpkg mocks --filename AccountRepository.go
type Repository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*model.Account, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*model.Account, error)
	Delete(ctx context.Context, id int64) error
}
