package memory

import (
	"context"

	ports "blog-service/internal/domain/ports/output"
	account_repository "blog-service/internal/domain/ports/output/account"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

// UnitOfWork hands out the shared in-memory repositories. Writes are applied
// immediately, so Rollback does not undo them.
type UnitOfWork struct {
	accounts account_repository.Repository
	posts    post_repository.Repository
	comments comment_repository.Repository
}

func NewUnitOfWork(
	accounts account_repository.Repository,
	posts post_repository.Repository,
	comments comment_repository.Repository,
) ports.UnitOfWork {
	return &UnitOfWork{accounts: accounts, posts: posts, comments: comments}
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	return &transaction{uow: u}, nil
}

type transaction struct {
	uow *UnitOfWork
}

func (t *transaction) AccountRepository() account_repository.Repository {
	return t.uow.accounts
}

func (t *transaction) PostRepository() post_repository.Repository {
	return t.uow.posts
}

func (t *transaction) CommentRepository() comment_repository.Repository {
	return t.uow.comments
}

func (t *transaction) Commit(ctx context.Context) error {
	return nil
}

func (t *transaction) Rollback(ctx context.Context) error {
	return nil
}
