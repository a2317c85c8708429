// Package identity wraps the hosted identity provider: sign-up, sign-in,
// access-token verification and the per-request session derived from it.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoSession    = errors.New("authentication required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	Identities       []Identity `json:"identities,omitempty"`
}

type Identity struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// Tokens is what the provider hands back after a successful sign-in.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type SignUpResult struct {
	User                   User    `json:"user"`
	Tokens                 *Tokens `json:"session,omitempty"`
	NeedsEmailConfirmation bool    `json:"needs_email_confirmation"`
}

type Provider interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*Tokens, error)
	SignOut(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (*User, error)
}

// ProviderError carries the provider's own message so callers can map it.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
