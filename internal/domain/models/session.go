package model

import "time"

type FlashLevel string

const (
	FlashInfo    FlashLevel = "info"
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
)

type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// Session is the server-side state bound to a session cookie.
// AccountID is zero for anonymous sessions.
type Session struct {
	ID        string    `json:"id"`
	AccountID int64     `json:"account_id"`
	AuthHash  string    `json:"auth_hash,omitempty"`
	Flashes   []Flash   `json:"flashes,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.AccountID != 0
}

func (s *Session) AddFlash(level FlashLevel, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
