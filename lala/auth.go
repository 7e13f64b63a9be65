package lala

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oybek/lalahouse/model"
)

type RegisterInput struct {
	FullName string     `json:"full_name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Phone    string     `json:"phone,omitempty"`
	Role     model.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session payload. The raw body is
// returned untouched: it is persisted verbatim and parsed on resolve.
func (c *Client) Login(ctx context.Context, email, password string) ([]byte, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("credentials", "email and password are required")
	}
	return c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password})
}

// Register creates an account. The backend answers conflicts with a
// detail message that is surfaced verbatim.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	if input.Email == "" || input.Password == "" {
		return NewValidationError("credentials", "email and password are required")
	}
	if !input.Role.Valid() {
		return NewValidationError("role", "role must be renter or host")
	}
	_, err := c.do(ctx, http.MethodPost, "/auth/register", nil, input)
	return err
}

// GoogleAuthToken trades a Google-verified email for a session payload.
// The backend takes the email as a query parameter.
func (c *Client) GoogleAuthToken(ctx context.Context, email string) ([]byte, error) {
	if email == "" {
		return nil, NewValidationError("email", "email is required")
	}
	query := url.Values{"Email": {email}}
	return c.do(ctx, http.MethodPost, "/auth/google-auth-token", query, nil)
}
