package post_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPost(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error)
	UpdatePost(ctx context.Context, actor *model.Account, id int64, post *model.UpdatePostDTO) error
	DeletePost(ctx context.Context, actor *model.Account, id int64) error
	AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.CommentDetailed, error)
}
