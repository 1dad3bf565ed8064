package blog_http

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type PostCreateHandler struct {
	posts    PostCreator
	validate *validator.Validate
	log      ports.Logger
}

func NewPostCreateHandler(posts PostCreator, validate *validator.Validate, log ports.Logger) *PostCreateHandler {
	return &PostCreateHandler{posts: posts, validate: validate, log: log}
}

func (h *PostCreateHandler) Handle(req *Request) (*Response, error) {
	var notices []model.Flash
	if !req.Identity.IsSuperuser {
		notices = append(notices, model.Flash{Level: model.FlashInfo, Message: MsgCreateOwnPost})
	}

	form := &PostForm{}
	if !req.IsPost() {
		return Render(TemplatePostForm, map[string]any{"form": form}).withFlashes(notices), nil
	}
	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		return Render(TemplatePostForm, map[string]any{"form": form, "errors": fieldErrors}).withFlashes(notices), nil
	}

	created, err := h.posts.CreatePost(req.Ctx, &model.CreatePostDTO{
		AuthorID: req.Identity.ID,
		Title:    form.Title,
		Content:  form.Content,
	})
	if err != nil {
		return nil, err
	}

	h.log.Debug("Post created via form", slog.Int64("post_id", created.Post.ID))
	return Redirect(RoutePostDetail, created.Post.ID).withFlashes(notices).Success(MsgPostCreated), nil
}
