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

type AccountRegistrar interface {
	Register(ctx context.Context, dto *model.RegisterAccountDTO) (*model.Account, error)
}

type RegisterHandler struct {
	accounts AccountRegistrar
	validate *validator.Validate
	log      ports.Logger
}

func NewRegisterHandler(accounts AccountRegistrar, validate *validator.Validate, log ports.Logger) *RegisterHandler {
	return &RegisterHandler{accounts: accounts, validate: validate, log: log}
}

func (h *RegisterHandler) Handle(req *Request) (*Response, error) {
	form := &RegisterForm{}
	if !req.IsPost() {
		return Render(TemplateRegister, map[string]any{"form": form}), nil
	}

	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		h.log.Debug("Registration form invalid", slog.Any("errors", fieldErrors))
		return Render(TemplateRegister, map[string]any{"form": form, "errors": fieldErrors}), nil
	}

	dto := &model.RegisterAccountDTO{Username: form.Username, Password: form.Password}
	if form.Email != "" {
		dto.Email = &form.Email
	}

	if _, err := h.accounts.Register(req.Ctx, dto); err != nil {
		if errors.Is(err, custom_errors.ErrUsernameTaken) {
			return Redirect(RouteRegister).Error(MsgUsernameExists), nil
		}
		return nil, err
	}

	return Redirect(RouteLogin).Success(MsgUserRegistered), nil
}
