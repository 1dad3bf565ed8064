package comment_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const commentColumns = `id, post_id, author_id, content, created_at`

type CommentRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"post_id":    comment.PostID,
		"author_id":  comment.AuthorID,
		"content":    comment.Content,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO comments (post_id, author_id, content, created_at)
		VALUES (@post_id, @author_id, @content, @created_at)
		RETURNING ` + commentColumns

	created, err := scanComment(c.db.QueryRow(ctx, query, args))
	if err != nil {
		c.observe("comment_create", start, false)
		c.log.Error("Error creating comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_create", start, true)
	return created, nil
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	start := time.Now()
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = @post_id ORDER BY created_at, id`

	rows, err := c.db.Query(ctx, query, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		c.observe("comment_list_by_post", start, false)
		c.log.Error("Error listing comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			c.observe("comment_list_by_post", start, false)
			c.log.Error("Error scanning comment", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		c.observe("comment_list_by_post", start, false)
		c.log.Error("Error iterating comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.observe("comment_list_by_post", start, true)
	return comments, nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	start := time.Now()
	if _, err := c.db.Exec(ctx, `DELETE FROM comments WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID}); err != nil {
		c.observe("comment_delete_by_post", start, false)
		c.log.Error("Error deleting comments of post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	c.observe("comment_delete_by_post", start, true)
	return nil
}

func (c *CommentRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	start := time.Now()
	if _, err := c.db.Exec(ctx, `DELETE FROM comments WHERE author_id = @author_id`, pgx.NamedArgs{"author_id": authorID}); err != nil {
		c.observe("comment_delete_by_author", start, false)
		c.log.Error("Error deleting comments of author", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	c.observe("comment_delete_by_author", start, true)
	return nil
}

func (c *CommentRepository) observe(queryType string, start time.Time, success bool) {
	c.metrics.IncrementDatabaseQueries(queryType, success)
	c.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment
	if err := row.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt); err != nil {
		return nil, err
	}
	return &comment, nil
}
