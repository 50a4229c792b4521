package auth

import "admin-srv/internal/model"

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SessionOutput carries the platform session token and the signed-in admin.
type SessionOutput struct {
	Token    string
	User     model.User
	Remember bool
}
