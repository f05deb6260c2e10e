package auth

import "errors"

var (
	ErrInvalidInput     = errors.New("auth: invalid input")
	ErrEmailTaken       = errors.New("auth: email already registered")
	ErrUserNotFound     = errors.New("auth: user not found")
	ErrWrongPassword    = errors.New("auth: wrong password")
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrTokenRevoked     = errors.New("auth: refresh token is not active")
	ErrInvalidToken     = errors.New("auth: invalid token")
	ErrForbidden        = errors.New("auth: forbidden")
)
