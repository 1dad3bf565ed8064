package blog_http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

type PostCommenter interface {
	GetPost(ctx context.Context, id int64) (*model.PostDetailed, error)
	AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.CommentDetailed, error)
}

type PostDetailHandler struct {
	posts    PostCommenter
	validate *validator.Validate
}

func NewPostDetailHandler(posts PostCommenter, validate *validator.Validate) *PostDetailHandler {
	return &PostDetailHandler{posts: posts, validate: validate}
}

func (h *PostDetailHandler) Handle(req *Request) (*Response, error) {
	post, err := h.posts.GetPost(req.Ctx, req.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return NotFound(), nil
		}
		return nil, err
	}

	form := &CommentForm{}
	data := map[string]any{"post": post, "comments": post.Comments, "comment_form": form}
	if !req.IsPost() {
		return Render(TemplatePostDetail, data), nil
	}

	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		data["errors"] = fieldErrors
		return Render(TemplatePostDetail, data), nil
	}

	_, err = h.posts.AddComment(req.Ctx, &model.CreateCommentDTO{
		PostID:   post.Post.ID,
		AuthorID: req.Identity.ID,
		Content:  form.Content,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return NotFound(), nil
		}
		return nil, err
	}
	return Redirect(RoutePostDetail, post.Post.ID).Success(MsgCommentAdded), nil
}
