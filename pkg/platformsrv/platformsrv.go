package platformsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"admin-srv/internal/model"
)

// buildURL joins the base URL, path, and query parameters. Blank values are
// omitted so upstream defaults apply.
func (c *platformImpl) buildURL(path string, params map[string]string) string {
	u := c.baseURL + path

	q := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// authHeaders builds the headers for an authenticated request. The session
// token travels as the platform's session cookie.
func (c *platformImpl) authHeaders(sessionToken string) map[string]string {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if sessionToken != "" {
		headers["Cookie"] = fmt.Sprintf("%s=%s", c.cookieName, sessionToken)
	}
	return headers
}

// unwrapEnvelope returns the "data" member when the body carries the
// platform's response envelope, or the body itself when it is bare.
func unwrapEnvelope(body []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil &&
		len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return envelope.Data
	}
	return body
}

// statusErr maps an upstream status code to a client sentinel, keeping the
// upstream message when the body carries one.
func statusErr(statusCode int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}

	var sentinel error
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = ErrBadRequest
	default:
		sentinel = ErrUpstream
	}

	if msg != "" {
		return fmt.Errorf("%w: %s (status %d)", sentinel, msg, statusCode)
	}
	return fmt.Errorf("%w (status %d)", sentinel, statusCode)
}

// decodeInto unwraps the envelope and unmarshals the payload.
func decodeInto(body []byte, out any) error {
	if err := json.Unmarshal(unwrapEnvelope(body), out); err != nil {
		return fmt.Errorf("failed to unmarshal platform response: %w", err)
	}
	return nil
}

// Login exchanges admin credentials for a platform session.
func (c *platformImpl) Login(ctx context.Context, input LoginInput) (*Session, error) {
	body, statusCode, err := c.httpClient.Post(ctx, c.baseURL+PathAuthLogin, input, c.authHeaders(""))
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var session Session
	if err := decodeInto(body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Signup registers a new admin account.
func (c *platformImpl) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	body, statusCode, err := c.httpClient.Post(ctx, c.baseURL+PathAuthSignup, input, c.authHeaders(""))
	if err != nil {
		return nil, fmt.Errorf("failed to signup: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, statusErr(statusCode, body)
	}

	var session Session
	if err := decodeInto(body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates the platform session.
func (c *platformImpl) Logout(ctx context.Context, sessionToken string) error {
	body, statusCode, err := c.httpClient.Post(ctx, c.baseURL+PathAuthLogout, nil, c.authHeaders(sessionToken))
	if err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return statusErr(statusCode, body)
	}
	return nil
}

// GetEvents retrieves the management listing of events.
func (c *platformImpl) GetEvents(ctx context.Context, sessionToken string, params map[string]string) (*model.EventList, error) {
	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(PathAdminEvents, params), c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var list model.EventList
	if err := decodeInto(body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetEvent retrieves one event by ID.
func (c *platformImpl) GetEvent(ctx context.Context, sessionToken, eventID string) (*model.Event, error) {
	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathAdminEvents, url.PathEscape(eventID))
	body, statusCode, err := c.httpClient.Get(ctx, u, c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var event model.Event
	if err := decodeInto(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEventStatus changes an event's moderation status.
func (c *platformImpl) UpdateEventStatus(ctx context.Context, sessionToken, eventID string, status model.EventStatus) (*model.Event, error) {
	u := fmt.Sprintf("%s%s/%s/status", c.baseURL, PathAdminEvents, url.PathEscape(eventID))
	payload := map[string]string{"status": string(status)}

	body, statusCode, err := c.httpClient.Patch(ctx, u, payload, c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var event model.Event
	if err := decodeInto(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetUsers retrieves the management listing of users.
func (c *platformImpl) GetUsers(ctx context.Context, sessionToken string, params map[string]string) (*model.UserList, error) {
	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(PathAdminUsers, params), c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var list model.UserList
	if err := decodeInto(body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPendingUsers retrieves users awaiting approval.
func (c *platformImpl) GetPendingUsers(ctx context.Context, sessionToken string, params map[string]string) (*model.UserList, error) {
	body, statusCode, err := c.httpClient.Get(ctx, c.buildURL(PathAdminUsers+"/pending", params), c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get pending users: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var list model.UserList
	if err := decodeInto(body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateUserStatus changes a user's account status.
func (c *platformImpl) UpdateUserStatus(ctx context.Context, sessionToken, userID string, status model.UserStatus) (*model.User, error) {
	u := fmt.Sprintf("%s%s/%s/status", c.baseURL, PathAdminUsers, url.PathEscape(userID))
	payload := map[string]string{"status": string(status)}

	body, statusCode, err := c.httpClient.Patch(ctx, u, payload, c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var user model.User
	if err := decodeInto(body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches arbitrary user profile fields.
func (c *platformImpl) UpdateUser(ctx context.Context, sessionToken, userID string, fields map[string]any) (*model.User, error) {
	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathAdminUsers, url.PathEscape(userID))

	body, statusCode, err := c.httpClient.Patch(ctx, u, fields, c.authHeaders(sessionToken))
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, statusErr(statusCode, body)
	}

	var user model.User
	if err := decodeInto(body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetJSON performs an authenticated GET against the platform API.
func (c *platformImpl) GetJSON(ctx context.Context, sessionToken, path string, params map[string]string) ([]byte, int, error) {
	return c.httpClient.Get(ctx, c.buildURL(path, params), c.authHeaders(sessionToken))
}
