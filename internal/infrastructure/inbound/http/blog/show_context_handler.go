package blog_http

import (
	"context"

	model "blog-service/internal/domain/models"
)

type AccountDescriber interface {
	DescribeAccounts(ctx context.Context, actor *model.Account) (*model.AccountDirectory, error)
}

type ShowContextHandler struct {
	accounts AccountDescriber
}

func NewShowContextHandler(accounts AccountDescriber) *ShowContextHandler {
	return &ShowContextHandler{accounts: accounts}
}

func (h *ShowContextHandler) Handle(req *Request) (*Response, error) {
	directory, err := h.accounts.DescribeAccounts(req.Ctx, req.Identity)
	if err != nil {
		return nil, err
	}
	return Render(TemplateContext, map[string]any{
		"registered_users": directory.RegisteredUsers,
		"is_admin":         directory.IsAdmin,
	}), nil
}
