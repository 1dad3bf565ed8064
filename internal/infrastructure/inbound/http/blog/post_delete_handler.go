package blog_http

import (
	"context"
	"errors"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, actor *model.Account, id int64) error
}

type PostDeleteHandler struct {
	posts PostDeleter
}

func NewPostDeleteHandler(posts PostDeleter) *PostDeleteHandler {
	return &PostDeleteHandler{posts: posts}
}

func (h *PostDeleteHandler) Handle(req *Request) (*Response, error) {
	err := h.posts.DeletePost(req.Ctx, req.Identity, req.ID)
	switch {
	case err == nil:
		return Redirect(RoutePostList).Success(MsgPostDeleted), nil
	case errors.Is(err, custom_errors.ErrForbidden):
		return Redirect(RoutePostList).Error(MsgDeletePostDenied), nil
	case errors.Is(err, custom_errors.ErrPostNotFound):
		return NotFound(), nil
	default:
		return nil, err
	}
}
