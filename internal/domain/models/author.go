package model

// Author is the public projection of an account attached to posts and comments.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func NewAuthor(a *Account) *Author {
	if a == nil {
		return nil
	}
	return &Author{ID: a.ID, Username: a.Username}
}
