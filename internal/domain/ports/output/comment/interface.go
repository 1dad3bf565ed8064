package comment_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/comment --outpkg mocks --filename CommentRepository.go
type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	DeleteByPost(ctx context.Context, postID int64) error
	DeleteByAuthor(ctx context.Context, authorID int64) error
}
