package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Credentials is the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the backend's response to a successful credential
// exchange: the opaque session token and the authenticated identity
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// SubmitCredentials exchanges an email/password pair for a backend
// session. Bad credentials return ErrInvalidCredentials.
func (c *Client) SubmitCredentials(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", "", Credentials{Email: email, Password: password}, &result)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}

// CurrentIdentity looks up the identity attached to a backend session
// token. A missing or expired session returns ErrUnauthenticated.
func (c *Client) CurrentIdentity(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EndSession terminates the backend session for a token. Callers treat
// failure as advisory; local logout proceeds regardless.
func (c *Client) EndSession(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}
