package apiclient

import (
	"context"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Register crea una cuenta nueva.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", nil, credentials{username, password}, nil)
}

// Login autentica y deja el token instalado en la sesión del cliente.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, credentials{username, password}, &out); err != nil {
		return err
	}
	c.session.SetToken(out.Token)
	return nil
}

// ChangePassword cambia el password del usuario de la sesión.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/change-password", nil,
		changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil)
}
