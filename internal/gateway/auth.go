package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"campaignhub/internal/domain"
)

// ErrNoTokenStore is returned by auth calls on a client built without Tokens.
var ErrNoTokenStore = errors.New("gateway: no token store configured")

// AuthAPI obtains and forgets the bearer credential.
type AuthAPI struct {
	c *Client
}

// Login exchanges email and password for a session and stores its token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.Session, error) {
	return a.session(ctx, "/auth/login", domain.Credentials{Email: email, Password: password})
}

// Register creates an account and stores the returned token.
func (a *AuthAPI) Register(ctx context.Context, email, password, name string) (domain.Session, error) {
	return a.session(ctx, "/auth/register", domain.Registration{Email: email, Password: password, Name: name})
}

// Refresh asks the backend for a new token using the current one.
func (a *AuthAPI) Refresh(ctx context.Context) (domain.Session, error) {
	return a.session(ctx, "/auth/refresh", nil)
}

// Logout forgets the locally held token. The backend is not contacted.
func (a *AuthAPI) Logout(ctx context.Context) error {
	if a.c.tokens == nil {
		return ErrNoTokenStore
	}
	return a.c.tokens.ClearToken(ctx)
}

func (a *AuthAPI) session(ctx context.Context, path string, in any) (domain.Session, error) {
	if a.c.tokens == nil {
		return domain.Session{}, ErrNoTokenStore
	}
	var out domain.Session
	if err := a.c.do(ctx, http.MethodPost, path, nil, in, &out); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return domain.Session{}, &DecodeError{Path: path, Err: errors.New("access_token missing")}
	}
	if err := a.c.tokens.SetToken(ctx, out.AccessToken); err != nil {
		return domain.Session{}, fmt.Errorf("gateway: store token: %w", err)
	}
	return out, nil
}
