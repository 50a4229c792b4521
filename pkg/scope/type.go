package scope

// Payload is the verified claim set extracted from an admin session token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
	Id        string `json:"jti"`
	Issuer    string `json:"iss"`
}

// Manager verifies session tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}
