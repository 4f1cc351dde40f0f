package api

import (
	"context"

	"github.com/scut1er/studentportal/core/portal"
)

type AuthAPI struct {
	client *Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and the caller's identity.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (portal.Identity, error) {
	var identity portal.Identity
	err := a.client.post(ctx, "/auth/login", credentials{Email: email, Password: password}, &identity)
	return identity, err
}

// Register self-registers a new account. The terminal client does not expose
// it; it is part of the backend contract.
func (a *AuthAPI) Register(ctx context.Context, input portal.UserInput) (portal.User, error) {
	var usr portal.User
	err := a.client.post(ctx, "/auth/register", input, &usr)
	return usr, err
}
