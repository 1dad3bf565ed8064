package session_store

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Store --dir . --output ../../../../../mocks/session --outpkg mocks --filename SessionStore.go
type Store interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
