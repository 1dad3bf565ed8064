package custom_errors

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordHash       = errors.New("failed to hash password")
)

// Post and comment errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNoUpdateRows = errors.New("nothing to update")
)

// Authorization and session errors
var (
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCorrupted = errors.New("session data corrupted")
)

// Infrastructure errors
var (
	ErrDatabaseQuery       = errors.New("database query failed")
	ErrDatabaseScan        = errors.New("database scan failed")
	ErrDatabaseTransaction = errors.New("database transaction failed")
	ErrCacheMiss           = errors.New("cache miss")
)
