package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	AuthorID  int64              `json:"author_id"`
	Content   string             `json:"content"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type CommentDetailed struct {
	Comment *Comment `json:"comment"`
	Author  *Author  `json:"author,omitempty"`
}
