package model

import "github.com/jackc/pgx/v5/pgtype"

type Account struct {
	ID           int64              `json:"id"`
	Username     string             `json:"username"`
	PasswordHash string             `json:"password_hash"`
	Email        *string            `json:"email,omitempty"`
	IsSuperuser  bool               `json:"is_superuser"`
	DateJoined   pgtype.Timestamptz `json:"date_joined"`
}

// CanModify reports whether the account may mutate a resource owned by ownerID.
// Superusers bypass ownership.
func (a *Account) CanModify(ownerID int64) bool {
	if a == nil {
		return false
	}
	return a.IsSuperuser || a.ID == ownerID
}
