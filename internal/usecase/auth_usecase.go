package usecase

import "context"

// AccessToken is the result of a successful login.
type AccessToken struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
}

// SeedUser is an account that must exist after start-up.
type SeedUser struct {
	Username string
	Password string
	Roles    []string
}

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	// Login checks the credentials and issues an access token carrying the user's roles
	Login(ctx context.Context, username, password string) (*AccessToken, error)

	// EnsureUsers creates the given accounts when they do not exist yet
	EnsureUsers(ctx context.Context, users []SeedUser) error
}
