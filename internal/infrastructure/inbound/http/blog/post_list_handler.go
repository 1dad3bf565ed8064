package blog_http

import (
	"context"
	"strconv"

	model "blog-service/internal/domain/models"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error)
}

type PostListHandler struct {
	posts    PostLister
	pageSize int
}

// NewPostListHandler returns the post list handler. A pageSize of zero
// disables pagination.
func NewPostListHandler(posts PostLister, pageSize int) *PostListHandler {
	return &PostListHandler{posts: posts, pageSize: pageSize}
}

func (h *PostListHandler) Handle(req *Request) (*Response, error) {
	filters := &model.PostFilters{}
	data := map[string]any{}

	if raw := req.Query.Get("author"); raw != "" {
		if authorID, err := strconv.ParseInt(raw, 10, 64); err == nil && authorID > 0 {
			filters.AuthorID = &authorID
			data["author"] = authorID
		}
	}

	page := 1
	if h.pageSize > 0 {
		if p, err := strconv.Atoi(req.Query.Get("page")); err == nil && p > 1 {
			page = p
		}
		limit := h.pageSize
		offset := (page - 1) * h.pageSize
		filters.Limit = &limit
		filters.Offset = &offset
	}

	posts, total, err := h.posts.ListPosts(req.Ctx, filters)
	if err != nil {
		return nil, err
	}

	data["posts"] = posts
	data["total"] = total
	if h.pageSize > 0 {
		data["page"] = page
		data["has_prev"] = page > 1
		data["has_next"] = page*h.pageSize < total
	}
	return Render(TemplatePostList, data), nil
}
