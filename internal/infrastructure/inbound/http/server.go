package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	auth_service "blog-service/internal/domain/ports/input/auth"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
)

type Server struct {
	router   *chi.Mux
	server   *http.Server
	cfg      config.HTTPServer
	session  config.Session
	blog     *blog_http.BlogHTTPService
	auth     auth_service.Service
	renderer *Renderer
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewServer(
	cfg config.HTTPServer,
	session config.Session,
	blog *blog_http.BlogHTTPService,
	auth auth_service.Service,
	log ports.Logger,
	metrics ports.MetricsProvider,
) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		session:  session,
		blog:     blog,
		auth:     auth,
		renderer: renderer,
		log:      log,
		metrics:  metrics,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderStatus(w, nil, http.StatusNotFound)
	})

	var missing []string
	r.Group(func(r chi.Router) {
		r.Use(s.csrfProtect())
		r.Use(s.withSession)
		for _, route := range blog_http.Routes {
			handler, ok := s.blog.Handler(route.Name)
			if !ok {
				missing = append(missing, route.Name)
				continue
			}
			var h http.Handler = s.serve(route, handler)
			if route.LoginRequired {
				h = s.loginRequired(h)
			}
			for _, method := range route.Methods {
				r.Method(method, route.Pattern, h)
			}
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("no handler for routes %v", missing)
	}

	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.cfg.Port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
