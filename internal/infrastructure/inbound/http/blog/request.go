package blog_http

import (
	"context"
	"net/http"
	"net/url"

	model "blog-service/internal/domain/models"
)

// Request is everything a handler may look at. It carries no writer, so a
// handler cannot produce output except through its returned Response.
type Request struct {
	Ctx      context.Context
	Method   string
	Form     url.Values
	Query    url.Values
	ID       int64
	Identity *model.Account
	Session  *model.Session
}

func (r *Request) IsPost() bool {
	return r.Method == http.MethodPost
}

type ResponseKind int

const (
	KindRedirect ResponseKind = iota
	KindRender
	KindNotFound
)

// Response describes what to send back. Flashes are queued on the session
// for redirects and shown immediately for renders.
type Response struct {
	Kind     ResponseKind
	Route    string
	Args     []int64
	Template string
	Data     map[string]any
	Flashes  []model.Flash

	// Session replaces the request session when non-nil (login, logout).
	Session *model.Session
}

func Redirect(route string, args ...int64) *Response {
	return &Response{Kind: KindRedirect, Route: route, Args: args}
}

func Render(template string, data map[string]any) *Response {
	if data == nil {
		data = map[string]any{}
	}
	return &Response{Kind: KindRender, Template: template, Data: data}
}

func NotFound() *Response {
	return &Response{Kind: KindNotFound}
}

func (r *Response) Info(message string) *Response {
	return r.flash(model.FlashInfo, message)
}

func (r *Response) Success(message string) *Response {
	return r.flash(model.FlashSuccess, message)
}

func (r *Response) Error(message string) *Response {
	return r.flash(model.FlashError, message)
}

func (r *Response) flash(level model.FlashLevel, message string) *Response {
	r.Flashes = append(r.Flashes, model.Flash{Level: level, Message: message})
	return r
}

// withFlashes prepends flashes collected before the response was chosen.
func (r *Response) withFlashes(flashes []model.Flash) *Response {
	if len(flashes) > 0 {
		r.Flashes = append(append([]model.Flash(nil), flashes...), r.Flashes...)
	}
	return r
}

// Handler is the shape every blog operation has.
type Handler func(req *Request) (*Response, error)
