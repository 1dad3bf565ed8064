package model

const (
	DateJoinedLayout = "2006-01-02 15:04"
	EmailPlaceholder = "N/A"
)

type AccountSummary struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	DateJoined string `json:"date_joined"`
}

// AccountDirectory is the account listing visible to a caller.
type AccountDirectory struct {
	RegisteredUsers map[int64]AccountSummary `json:"registered_users"`
	IsAdmin         bool                     `json:"is_admin"`
}

func NewAccountSummary(a *Account) AccountSummary {
	email := EmailPlaceholder
	if a.Email != nil && *a.Email != "" {
		email = *a.Email
	}
	return AccountSummary{
		Username:   a.Username,
		Email:      email,
		DateJoined: a.DateJoined.Time.Format(DateJoinedLayout),
	}
}
