package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	account_repository "blog-service/internal/domain/ports/output/account"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
)

type PostService struct {
	postRepo    post_repository.Repository
	commentRepo comment_repository.Repository
	accountRepo account_repository.Repository
	uow         ports.UnitOfWork
	log         ports.Logger
	metrics     ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	commentRepo comment_repository.Repository,
	accountRepo account_repository.Repository,
	uow ports.UnitOfWork,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		accountRepo: accountRepo,
		uow:         uow,
		log:         log,
		metrics:     metrics,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	author, err := s.accountRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		s.log.Debug("Author lookup failed during post creation",
			slog.Int64("author_id", post.AuthorID),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	created, err := s.postRepo.Create(ctx, &model.Post{
		AuthorID: post.AuthorID,
		Title:    post.Title,
		Content:  post.Content,
	})
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	s.log.Info("Post created", slog.Int64("post_id", created.ID), slog.Int64("author_id", created.AuthorID))
	s.metrics.IncrementPostOperations("create", true)
	return &model.PostDetailed{
		Post:     created,
		Author:   model.NewAuthor(author),
		Comments: []*model.CommentDetailed{},
	}, nil
}

// GetPost returns the post with its author and comments, oldest comment first.
func (s *PostService) GetPost(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	authors := newAuthorLookup(s.accountRepo, s.log)

	author, err := authors.get(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to list comments", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	detailed := make([]*model.CommentDetailed, 0, len(comments))
	for _, comment := range comments {
		commentAuthor, err := authors.get(ctx, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		detailed = append(detailed, &model.CommentDetailed{Comment: comment, Author: commentAuthor})
	}

	return &model.PostDetailed{
		Post:     post,
		Author:   author,
		Comments: detailed,
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, int, error) {
	if filters == nil {
		filters = &model.PostFilters{}
	}

	posts, total, err := s.postRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	authors := newAuthorLookup(s.accountRepo, s.log)
	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := authors.get(ctx, post.AuthorID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, &model.PostDetailed{Post: post, Author: author})
	}
	return result, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, actor *model.Account, id int64, update *model.UpdatePostDTO) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(post.AuthorID) {
		s.log.Warn("Post update denied", slog.Int64("post_id", id), slog.Int64("author_id", post.AuthorID))
		s.metrics.IncrementPostOperations("update", false)
		return custom_errors.ErrForbidden
	}

	if _, err := s.postRepo.Update(ctx, id, update); err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return err
	}

	s.log.Info("Post updated", slog.Int64("post_id", id), slog.Int64("actor_id", actor.ID))
	s.metrics.IncrementPostOperations("update", true)
	return nil
}

// DeletePost removes the post and its comments in one unit of work.
func (s *PostService) DeletePost(ctx context.Context, actor *model.Account, id int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(post.AuthorID) {
		s.log.Warn("Post deletion denied", slog.Int64("post_id", id), slog.Int64("author_id", post.AuthorID))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrForbidden
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrDatabaseTransaction
	}

	var committed bool
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			if !strings.Contains(rbErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
			} else {
				s.log.Debug("Transaction already closed during rollback", slog.String("error", rbErr.Error()))
			}
		}
		s.metrics.IncrementPostOperations("delete", false)
	}()

	if err := tx.CommentRepository().DeleteByPost(ctx, id); err != nil {
		return err
	}
	if err := tx.PostRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit post deletion", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseTransaction
	}
	committed = true

	s.log.Info("Post deleted", slog.Int64("post_id", id), slog.Int64("actor_id", actor.ID))
	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

func (s *PostService) AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.CommentDetailed, error) {
	if _, err := s.postRepo.GetByID(ctx, comment.PostID); err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}
	author, err := s.accountRepo.GetByID(ctx, comment.AuthorID)
	if err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, &model.Comment{
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	})
	if err != nil {
		s.log.Error("Failed to create comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementCommentOperations("create", true)
	return &model.CommentDetailed{Comment: created, Author: model.NewAuthor(author)}, nil
}

// authorLookup memoizes author projections for the lifetime of one call.
type authorLookup struct {
	repo  account_repository.Repository
	log   ports.Logger
	cache map[int64]*model.Author
}

func newAuthorLookup(repo account_repository.Repository, log ports.Logger) *authorLookup {
	return &authorLookup{repo: repo, log: log, cache: make(map[int64]*model.Author)}
}

func (l *authorLookup) get(ctx context.Context, id int64) (*model.Author, error) {
	if author, ok := l.cache[id]; ok {
		return author, nil
	}
	account, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, err
		}
		l.log.Warn("Author missing for content", slog.Int64("author_id", id))
		account = nil
	}
	author := model.NewAuthor(account)
	l.cache[id] = author
	return author, nil
}
