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

type PasswordChanger interface {
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	ChangePassword(ctx context.Context, actor *model.Account, targetID int64, password string) (*model.Account, error)
}

type SessionRefresher interface {
	RefreshSession(ctx context.Context, session *model.Session, account *model.Account) error
}

type UpdateUserHandler struct {
	accounts PasswordChanger
	sessions SessionRefresher
	validate *validator.Validate
	log      ports.Logger
}

func NewUpdateUserHandler(accounts PasswordChanger, sessions SessionRefresher, validate *validator.Validate, log ports.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{accounts: accounts, sessions: sessions, validate: validate, log: log}
}

func (h *UpdateUserHandler) Handle(req *Request) (*Response, error) {
	target, err := h.accounts.GetAccount(req.Ctx, req.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return NotFound(), nil
		}
		return nil, err
	}
	if !req.Identity.CanModify(target.ID) {
		return Redirect(RouteShowContext).Error(MsgUpdateUserDenied), nil
	}

	form := &PasswordForm{}
	if !req.IsPost() {
		return Render(TemplateUpdateUser, map[string]any{"user": target, "form": form}), nil
	}
	if fieldErrors := BindForm(h.validate, req.Form, form); fieldErrors != nil {
		return Render(TemplateUpdateUser, map[string]any{"user": target, "form": form, "errors": fieldErrors}), nil
	}

	updated, err := h.accounts.ChangePassword(req.Ctx, req.Identity, target.ID, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrForbidden):
			return Redirect(RouteShowContext).Error(MsgUpdateUserDenied), nil
		case errors.Is(err, custom_errors.ErrUserNotFound):
			return NotFound(), nil
		default:
			return nil, err
		}
	}

	// Keep the caller signed in after changing their own password.
	if req.Identity.ID == updated.ID {
		if err := h.sessions.RefreshSession(req.Ctx, req.Session, updated); err != nil {
			h.log.Error("Failed to refresh session after password change",
				slog.Int64("account_id", updated.ID),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	return Redirect(RouteShowContext).Success(MsgPasswordUpdated), nil
}
