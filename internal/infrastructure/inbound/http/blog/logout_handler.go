package blog_http

import (
	"context"
	"log/slog"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type SessionTerminator interface {
	Logout(ctx context.Context, session *model.Session) (*model.Session, error)
}

type LogoutHandler struct {
	auth SessionTerminator
	log  ports.Logger
}

func NewLogoutHandler(auth SessionTerminator, log ports.Logger) *LogoutHandler {
	return &LogoutHandler{auth: auth, log: log}
}

// Handle always ends the session, even when the store fails to forget it.
func (h *LogoutHandler) Handle(req *Request) (*Response, error) {
	fresh, err := h.auth.Logout(req.Ctx, req.Session)
	if err != nil {
		h.log.Warn("Failed to drop session on logout", slog.String("error", err.Error()))
	}
	resp := Redirect(RouteLogin)
	resp.Session = fresh
	return resp, nil
}
