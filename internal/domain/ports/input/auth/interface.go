package auth_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	// Load returns the session bound to id, or a fresh anonymous one.
	Load(ctx context.Context, id string) *model.Session
	Save(ctx context.Context, session *model.Session) error
	Login(ctx context.Context, session *model.Session, username, password string) (*model.Session, *model.Account, error)
	Logout(ctx context.Context, session *model.Session) (*model.Session, error)
	Identify(ctx context.Context, session *model.Session) (*model.Account, error)
	RefreshSession(ctx context.Context, session *model.Session, account *model.Account) error
}
