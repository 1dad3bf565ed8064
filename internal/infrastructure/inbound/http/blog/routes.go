package blog_http

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	RouteRegister    = "register"
	RouteLogin       = "login"
	RouteLogout      = "logout"
	RouteShowContext = "show_context"
	RouteUpdateUser  = "update_user"
	RouteDeleteUser  = "delete_user"
	RoutePostList    = "post_list"
	RoutePostCreate  = "post_create"
	RoutePostDetail  = "post_detail"
	RoutePostEdit    = "post_edit"
	RoutePostDelete  = "post_delete"
)

type Route struct {
	Name          string
	Pattern       string
	Methods       []string
	LoginRequired bool
}

// Routes lists every named route. Patterns use chi syntax; {id} is the only
// parameter.
var Routes = []Route{
	{Name: RouteRegister, Pattern: "/register", Methods: []string{"GET", "POST"}},
	{Name: RouteLogin, Pattern: "/login", Methods: []string{"GET", "POST"}},
	{Name: RouteLogout, Pattern: "/logout", Methods: []string{"GET", "POST"}},
	{Name: RouteShowContext, Pattern: "/accounts", Methods: []string{"GET"}, LoginRequired: true},
	{Name: RouteUpdateUser, Pattern: "/accounts/{id}/update", Methods: []string{"GET", "POST"}, LoginRequired: true},
	{Name: RouteDeleteUser, Pattern: "/accounts/{id}/delete", Methods: []string{"POST"}, LoginRequired: true},
	{Name: RoutePostList, Pattern: "/", Methods: []string{"GET"}},
	{Name: RoutePostCreate, Pattern: "/posts/new", Methods: []string{"GET", "POST"}, LoginRequired: true},
	{Name: RoutePostDetail, Pattern: "/posts/{id}", Methods: []string{"GET", "POST"}, LoginRequired: true},
	{Name: RoutePostEdit, Pattern: "/posts/{id}/edit", Methods: []string{"GET", "POST"}, LoginRequired: true},
	{Name: RoutePostDelete, Pattern: "/posts/{id}/delete", Methods: []string{"POST"}, LoginRequired: true},
}

var routesByName = func() map[string]Route {
	m := make(map[string]Route, len(Routes))
	for _, r := range Routes {
		m[r.Name] = r
	}
	return m
}()

// Reverse builds the path of a named route.
func Reverse(name string, args ...int64) (string, error) {
	route, ok := routesByName[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	hasID := strings.Contains(route.Pattern, "{id}")
	switch {
	case hasID && len(args) != 1:
		return "", fmt.Errorf("route %q takes one id, got %d args", name, len(args))
	case !hasID && len(args) != 0:
		return "", fmt.Errorf("route %q takes no args, got %d", name, len(args))
	case hasID:
		return strings.Replace(route.Pattern, "{id}", strconv.FormatInt(args[0], 10), 1), nil
	default:
		return route.Pattern, nil
	}
}

// MustReverse is Reverse for use in templates and tests.
func MustReverse(name string, args ...int64) string {
	path, err := Reverse(name, args...)
	if err != nil {
		panic(err)
	}
	return path
}
