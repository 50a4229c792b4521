package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotAdmin           = errors.New("account is not an admin")
	ErrUpstream           = errors.New("platform request failed")
)
