package apiclient

import (
	"context"
	"net/http"
)

// AuthService talks to the authentication endpoints.
type AuthService struct {
	client *Client
}

// NewAuthService constructs the service.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Login exchanges credentials for a token pair and the account profile.
// The caller decides what to persist; this call touches no stored state.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout revokes the given refresh token on the backend. Revoking an
// already-unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Body:   map[string]string{"refreshToken": refreshToken},
	}, nil)
}

// LoadMe fetches the profile behind the current access token.
func (s *AuthService) LoadMe(ctx context.Context) (*User, error) {
	var user User
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/auth/loadme",
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
