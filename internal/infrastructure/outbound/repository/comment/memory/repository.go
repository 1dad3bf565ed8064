package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"

	"github.com/jackc/pgx/v5/pgtype"
)

type CommentRepository struct {
	log      ports.Logger
	mu       sync.RWMutex
	comments map[int64]*model.Comment
	nextID   int64
}

func NewCommentRepository(log ports.Logger) *CommentRepository {
	return &CommentRepository{
		log:      log,
		comments: make(map[int64]*model.Comment),
		nextID:   1,
	}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	newComment := &model.Comment{
		ID:        c.nextID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	c.nextID++
	c.comments[newComment.ID] = newComment

	result := *newComment
	return &result, nil
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*model.Comment
	for _, comment := range c.comments {
		if comment.PostID == postID {
			commentCopy := *comment
			result = append(result, &commentCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		ti, tj := result[i].CreatedAt.Time, result[j].CreatedAt.Time
		if ti.Equal(tj) {
			return result[i].ID < result[j].ID
		}
		return ti.Before(tj)
	})
	return result, nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, comment := range c.comments {
		if comment.PostID == postID {
			delete(c.comments, id)
		}
	}
	return nil
}

func (c *CommentRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, comment := range c.comments {
		if comment.AuthorID == authorID {
			delete(c.comments, id)
		}
	}
	return nil
}
