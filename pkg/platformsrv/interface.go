package platformsrv

import (
	"context"

	"admin-srv/internal/model"
	pkghttp "admin-srv/pkg/http"
)

// IPlatform defines the interface for the events platform API client.
// Implementations are safe for concurrent use.
type IPlatform interface {
	// Login exchanges admin credentials for a platform session.
	Login(ctx context.Context, input LoginInput) (*Session, error)
	// Signup registers a new admin account and returns its session.
	Signup(ctx context.Context, input SignupInput) (*Session, error)
	// Logout invalidates the platform session.
	Logout(ctx context.Context, sessionToken string) error

	GetEvents(ctx context.Context, sessionToken string, params map[string]string) (*model.EventList, error)
	GetEvent(ctx context.Context, sessionToken, eventID string) (*model.Event, error)
	UpdateEventStatus(ctx context.Context, sessionToken, eventID string, status model.EventStatus) (*model.Event, error)

	GetUsers(ctx context.Context, sessionToken string, params map[string]string) (*model.UserList, error)
	GetPendingUsers(ctx context.Context, sessionToken string, params map[string]string) (*model.UserList, error)
	UpdateUserStatus(ctx context.Context, sessionToken, userID string, status model.UserStatus) (*model.User, error)
	UpdateUser(ctx context.Context, sessionToken, userID string, fields map[string]any) (*model.User, error)

	// GetJSON performs an authenticated GET and returns the raw body and
	// status. Blank param values are omitted from the query string.
	GetJSON(ctx context.Context, sessionToken, path string, params map[string]string) ([]byte, int, error)
}

// New creates a new events platform API client. Returns the interface.
func New(cfg PlatformConfig) IPlatform {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return &platformImpl{
		baseURL:    cfg.BaseURL,
		cookieName: cfg.CookieName,
		httpClient: cfg.HTTPClient,
	}
}

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}
