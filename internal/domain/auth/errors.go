package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("nama atau password salah")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownRole        = errors.New("unknown role")
)
