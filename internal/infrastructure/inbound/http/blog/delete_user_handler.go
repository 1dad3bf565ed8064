package blog_http

import (
	"context"
	"errors"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

type AccountDeleter interface {
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	DeleteAccount(ctx context.Context, actor *model.Account, targetID int64) error
}

type DeleteUserHandler struct {
	accounts AccountDeleter
}

func NewDeleteUserHandler(accounts AccountDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{accounts: accounts}
}

func (h *DeleteUserHandler) Handle(req *Request) (*Response, error) {
	target, err := h.accounts.GetAccount(req.Ctx, req.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return NotFound(), nil
		}
		return nil, err
	}
	if !req.Identity.CanModify(target.ID) {
		return Redirect(RouteShowContext).Error(MsgDeleteUserDenied), nil
	}

	if err := h.accounts.DeleteAccount(req.Ctx, req.Identity, target.ID); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrForbidden):
			return Redirect(RouteShowContext).Error(MsgDeleteUserDenied), nil
		case errors.Is(err, custom_errors.ErrUserNotFound):
			return NotFound(), nil
		default:
			return nil, err
		}
	}
	return Redirect(RouteShowContext).Success(MsgUserDeleted), nil
}
