package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrAdminOnly    = errors.New("administrator access required")
)
