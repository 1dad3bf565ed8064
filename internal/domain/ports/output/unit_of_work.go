package ports

import (
	"context"

	account_repository "blog-service/internal/domain/ports/output/account"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../mocks --outpkg mocks --filename Transaction.go
type Transaction interface {
	AccountRepository() account_repository.Repository
	PostRepository() post_repository.Repository
	CommentRepository() comment_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
