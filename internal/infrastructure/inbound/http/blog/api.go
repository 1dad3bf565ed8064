package blog_http

import (
	"github.com/go-playground/validator/v10"

	account_service "blog-service/internal/domain/ports/input/account"
	auth_service "blog-service/internal/domain/ports/input/auth"
	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
)

type BlogHTTPService struct {
	handlers map[string]Handler
}

func NewBlogHTTPService(
	accounts account_service.Service,
	posts post_service.Service,
	auth auth_service.Service,
	validate *validator.Validate,
	log ports.Logger,
	pageSize int,
) *BlogHTTPService {
	return &BlogHTTPService{
		handlers: map[string]Handler{
			RouteRegister:    NewRegisterHandler(accounts, validate, log).Handle,
			RouteLogin:       NewLoginHandler(auth, validate, log).Handle,
			RouteLogout:      NewLogoutHandler(auth, log).Handle,
			RouteShowContext: NewShowContextHandler(accounts).Handle,
			RouteUpdateUser:  NewUpdateUserHandler(accounts, auth, validate, log).Handle,
			RouteDeleteUser:  NewDeleteUserHandler(accounts).Handle,
			RoutePostList:    NewPostListHandler(posts, pageSize).Handle,
			RoutePostCreate:  NewPostCreateHandler(posts, validate, log).Handle,
			RoutePostDetail:  NewPostDetailHandler(posts, validate).Handle,
			RoutePostEdit:    NewPostEditHandler(posts, validate).Handle,
			RoutePostDelete:  NewPostDeleteHandler(posts).Handle,
		},
	}
}

// Handler returns the handler bound to a route name.
func (s *BlogHTTPService) Handler(route string) (Handler, bool) {
	h, ok := s.handlers[route]
	return h, ok
}
