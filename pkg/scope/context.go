package scope

import (
	"context"

	"admin-srv/internal/model"
)

type contextKey string

const scopeKey contextKey = "scope"

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// GetScopeFromContext returns the scope, or a zero scope when the request was
// not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	scope, _ := ctx.Value(scopeKey).(model.Scope)
	return scope
}
