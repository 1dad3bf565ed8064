package http_server

import (
	"context"
	"crypto/sha256"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	model "blog-service/internal/domain/models"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
)

type contextKey int

const stateContextKey contextKey = iota

const (
	csrfFieldName  = "csrf_token"
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRF-Token"
)

// requestState is the session and identity resolved for one request.
type requestState struct {
	session   *model.Session
	identity  *model.Account
	cookieID  string
	csrfField template.HTML
}

func stateFrom(ctx context.Context) *requestState {
	state, _ := ctx.Value(stateContextKey).(*requestState)
	return state
}

// observe logs every request and records its route, status and duration.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		code := strconv.Itoa(status)
		duration := time.Since(start)

		s.metrics.IncrementHTTPRequests(route, code)
		s.metrics.RecordHTTPRequestDuration(route, code, duration)

		s.log.Info("HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// withSession loads the session named by the cookie and resolves its account.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cookieID string
		if cookie, err := r.Cookie(s.session.CookieName); err == nil {
			cookieID = cookie.Value
		}

		session := s.auth.Load(r.Context(), cookieID)
		identity, err := s.auth.Identify(r.Context(), session)
		if err != nil {
			s.log.Error("Failed to identify session", slog.String("error", err.Error()))
			s.renderStatus(w, nil, http.StatusInternalServerError)
			return
		}

		w.Header().Set(csrfHeaderName, csrf.Token(r))
		state := &requestState{
			session:   session,
			identity:  identity,
			cookieID:  cookieID,
			csrfField: csrf.TemplateField(r),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), stateContextKey, state)))
	})
}

// loginRequired sends anonymous visitors to the login page.
func (s *Server) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := stateFrom(r.Context())
		if state == nil || state.identity == nil {
			if state != nil {
				s.commitSession(w, r, state, state.session)
			}
			http.Redirect(w, r, blog_http.MustReverse(blog_http.RouteLogin), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// csrfProtect rejects unsafe requests that do not carry the token issued with
// the csrftoken cookie.
func (s *Server) csrfProtect() func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("csrf:" + s.session.Secret))
	protect := csrf.Protect(key[:],
		csrf.FieldName(csrfFieldName),
		csrf.RequestHeader(csrfHeaderName),
		csrf.CookieName(csrfCookieName),
		csrf.Path("/"),
		csrf.Secure(s.session.Secure),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(s.csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Referer checks only apply to HTTPS.
			if r.TLS == nil && !s.session.Secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func (s *Server) csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	s.log.Warn("CSRF check failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("reason", reason),
		slog.String("request_id", middleware.GetReqID(r.Context())))
	s.renderStatus(w, nil, http.StatusForbidden)
}
