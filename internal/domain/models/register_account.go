package model

type RegisterAccountDTO struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       *string `json:"email,omitempty"`
	IsSuperuser bool    `json:"is_superuser"`
}
