package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/cache"
)

type PostServiceCacheDecorator struct {
	service   post_service.Service
	postCache cache.PostCache
	log       output.Logger
}

func NewPostServiceCacheDecorator(
	service post_service.Service,
	postCache cache.PostCache,
	log output.Logger,
) post_service.Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.Post.ID),
			slog.String("error", err.Error()))
	}
	return result, nil
}

func (d *PostServiceCacheDecorator) GetPost(ctx context.Context, id int64) (*model.PostDetailed, error) {
	cachedPost, err := d.postCache.GetPost(ctx, id)
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		return cachedPost, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error) {
	return d.service.ListPosts(ctx, filters)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, actor *model.Account, id int64, post *model.UpdatePostDTO) error {
	if err := d.service.UpdatePost(ctx, actor, id, post); err != nil {
		return err
	}
	d.invalidate(ctx, id)
	return nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, actor *model.Account, id int64) error {
	if err := d.service.DeletePost(ctx, actor, id); err != nil {
		return err
	}
	d.invalidate(ctx, id)
	return nil
}

func (d *PostServiceCacheDecorator) AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.CommentDetailed, error) {
	result, err := d.service.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, comment.PostID)
	return result, nil
}

func (d *PostServiceCacheDecorator) invalidate(ctx context.Context, id int64) {
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
}
