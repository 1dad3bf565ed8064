package http_server

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	model "blog-service/internal/domain/models"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
)

// serve turns a blog handler into an http.HandlerFunc bound to route.
func (s *Server) serve(route blog_http.Route, handler blog_http.Handler) http.HandlerFunc {
	hasID := strings.Contains(route.Pattern, "{id}")

	return func(w http.ResponseWriter, r *http.Request) {
		state := stateFrom(r.Context())

		var id int64
		if hasID {
			parsed, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil || parsed <= 0 {
				s.renderStatus(w, state, http.StatusNotFound)
				return
			}
			id = parsed
		}

		if err := r.ParseForm(); err != nil {
			s.renderStatus(w, state, http.StatusBadRequest)
			return
		}

		resp, err := handler(&blog_http.Request{
			Ctx:      r.Context(),
			Method:   r.Method,
			Form:     r.PostForm,
			Query:    r.URL.Query(),
			ID:       id,
			Identity: state.identity,
			Session:  state.session,
		})
		if err != nil {
			s.log.Error("Handler failed",
				slog.String("route", route.Name),
				slog.String("error", err.Error()))
			s.renderStatus(w, state, http.StatusInternalServerError)
			return
		}

		s.write(w, r, state, resp)
	}
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, state *requestState, resp *blog_http.Response) {
	session := state.session
	if resp.Session != nil {
		session = resp.Session
	}

	switch resp.Kind {
	case blog_http.KindRedirect:
		location, err := blog_http.Reverse(resp.Route, resp.Args...)
		if err != nil {
			s.log.Error("Failed to build redirect", slog.String("route", resp.Route), slog.String("error", err.Error()))
			s.renderStatus(w, state, http.StatusInternalServerError)
			return
		}
		for _, flash := range resp.Flashes {
			session.AddFlash(flash.Level, flash.Message)
		}
		s.commitSession(w, r, state, session)
		http.Redirect(w, r, location, http.StatusFound)

	case blog_http.KindRender:
		data := make(map[string]any, len(resp.Data)+3)
		for k, v := range resp.Data {
			data[k] = v
		}
		data["messages"] = append(session.PopFlashes(), resp.Flashes...)
		data["current_user"] = state.identity
		data["csrf_field"] = state.csrfField
		s.commitSession(w, r, state, session)
		s.render(w, resp.Template, http.StatusOK, data)

	default:
		s.commitSession(w, r, state, session)
		s.renderStatus(w, state, http.StatusNotFound)
	}
}

// commitSession stores the session when it holds anything worth keeping and
// clears the cookie otherwise.
func (s *Server) commitSession(w http.ResponseWriter, r *http.Request, state *requestState, session *model.Session) {
	known := state.cookieID != "" && state.cookieID == session.ID
	if session.IsAuthenticated() || len(session.Flashes) > 0 || known {
		if err := s.auth.Save(r.Context(), session); err != nil {
			s.log.Error("Failed to save session", slog.String("error", err.Error()))
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     s.session.CookieName,
			Value:    session.ID,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   s.session.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		return
	}

	if state.cookieID != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     s.session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.session.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// render buffers the page so a failing template never leaves a
// half-written response.
func (s *Server) render(w http.ResponseWriter, name string, status int, data map[string]any) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name, data); err != nil {
		s.log.Error("Failed to render template", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderStatus(w http.ResponseWriter, state *requestState, status int) {
	data := map[string]any{
		"status":      status,
		"status_text": http.StatusText(status),
	}
	if state != nil {
		data["current_user"] = state.identity
		data["csrf_field"] = state.csrfField
	}
	s.render(w, errorTemplate, status, data)
}
