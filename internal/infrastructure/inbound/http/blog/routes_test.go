package blog_http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		args    []int64
		want    string
		wantErr bool
	}{
		{name: "static route", route: blog_http.RoutePostList, want: "/"},
		{name: "login", route: blog_http.RouteLogin, want: "/login"},
		{name: "route with id", route: blog_http.RoutePostDetail, args: []int64{42}, want: "/posts/42"},
		{name: "account route with id", route: blog_http.RouteDeleteUser, args: []int64{7}, want: "/accounts/7/delete"},
		{name: "unknown route", route: "nope", wantErr: true},
		{name: "missing id", route: blog_http.RoutePostEdit, wantErr: true},
		{name: "unexpected id", route: blog_http.RouteRegister, args: []int64{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := blog_http.Reverse(tt.route, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoutes_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range blog_http.Routes {
		assert.False(t, seen[r.Name], "duplicate route %s", r.Name)
		seen[r.Name] = true
	}
	assert.Len(t, seen, 11)
}

func TestMustReverse_Panics(t *testing.T) {
	assert.Panics(t, func() { blog_http.MustReverse("missing") })
	assert.NotPanics(t, func() { blog_http.MustReverse(blog_http.RouteShowContext) })
}
