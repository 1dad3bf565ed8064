package model

type CreateCommentDTO struct {
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"author_id"`
	Content  string `json:"content"`
}
