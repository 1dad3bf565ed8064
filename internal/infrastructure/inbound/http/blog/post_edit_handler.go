package blog_http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

type PostEditor interface {
	GetPost(ctx context.Context, id int64) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, actor *model.Account, id int64, post *model.UpdatePostDTO) error
}

type PostEditHandler struct {
	posts    PostEditor
	validate *validator.Validate
}

func NewPostEditHandler(posts PostEditor, validate *validator.Validate) *PostEditHandler {
	return &PostEditHandler{posts: posts, validate: validate}
}

func (h *PostEditHandler) Handle(req *Request) (*Response, error) {
	post, err := h.posts.GetPost(req.Ctx, req.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return NotFound(), nil
		}
		return nil, err
	}
	if !req.Identity.CanModify(post.Post.AuthorID) {
		return Redirect(RoutePostDetail, post.Post.ID).Error(MsgEditPostDenied), nil
	}

	if !req.IsPost() {
		form := &PostForm{Title: post.Post.Title, Content: post.Post.Content}
		return Render(TemplatePostForm, map[string]any{"form": form, "post": post}), nil
	}

	form := &PostForm{}
	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		return Render(TemplatePostForm, map[string]any{"form": form, "post": post, "errors": fieldErrors}), nil
	}

	err = h.posts.UpdatePost(req.Ctx, req.Identity, post.Post.ID, &model.UpdatePostDTO{
		Title:   &form.Title,
		Content: &form.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrForbidden):
			return Redirect(RoutePostDetail, post.Post.ID).Error(MsgEditPostDenied), nil
		case errors.Is(err, custom_errors.ErrPostNotFound):
			return NotFound(), nil
		default:
			return nil, err
		}
	}
	return Redirect(RoutePostDetail, post.Post.ID).Success(MsgPostUpdated), nil
}
