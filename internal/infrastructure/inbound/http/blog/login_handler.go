package blog_http

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type SessionAuthenticator interface {
	Login(ctx context.Context, session *model.Session, username, password string) (*model.Session, *model.Account, error)
}

type LoginHandler struct {
	auth     SessionAuthenticator
	validate *validator.Validate
	log      ports.Logger
}

func NewLoginHandler(auth SessionAuthenticator, validate *validator.Validate, log ports.Logger) *LoginHandler {
	return &LoginHandler{auth: auth, validate: validate, log: log}
}

func (h *LoginHandler) Handle(req *Request) (*Response, error) {
	if !req.IsPost() {
		return Render(TemplateLogin, map[string]any{"form": &LoginForm{}}), nil
	}

	form := &LoginForm{}
	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		return Redirect(RouteLogin).Error(MsgInvalidCredentials), nil
	}

	session, account, err := h.auth.Login(req.Ctx, req.Session, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, custom_errors.ErrInvalidCredentials) {
			return Redirect(RouteLogin).Error(MsgInvalidCredentials), nil
		}
		return nil, err
	}

	h.log.Debug("User logged in", slog.Int64("account_id", account.ID))
	resp := Redirect(RoutePostList)
	resp.Session = session
	return resp, nil
}
