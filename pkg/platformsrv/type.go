package platformsrv

import (
	"admin-srv/internal/model"
	pkghttp "admin-srv/pkg/http"
)

// PlatformConfig holds configuration for the events platform API client.
type PlatformConfig struct {
	BaseURL    string
	CookieName string
	HTTPClient pkghttp.IClient
}

// Result is the outcome of a report fetch. Exactly one of Data and Error is
// meaningful: Success true ships Data, Success false ships Error.
type Result[T any] struct {
	Success bool
	Data    *T
	Error   string
}

// Ok wraps a fetched payload.
func Ok[T any](data *T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// LoginInput carries admin credentials to the platform API.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput carries a new admin registration to the platform API.
type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Session is the authenticated session the platform API returns on login.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// platformImpl implements IPlatform.
type platformImpl struct {
	baseURL    string
	cookieName string
	httpClient pkghttp.IClient
}
