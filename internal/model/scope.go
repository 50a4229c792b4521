package model

// Scope carries the authenticated admin identity through a request. The
// session token is the raw credential relayed to the platform backend on
// proxied calls; it is never logged or persisted.
type Scope struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	SessionToken string `json:"-"`
}
