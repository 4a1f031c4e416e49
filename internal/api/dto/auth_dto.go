package dto

import (
	"github.com/sportsmgr/club-service/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest payload for token renewal.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LogoutRequest payload for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse carries both tokens plus the account.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshResponse carries the renewed access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserResponse is the wire form of an account.
type UserResponse struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	AssociationID *string     `json:"associationId,omitempty"`
	AvatarURL     *string     `json:"avatarUrl,omitempty"`
}

// FromUser maps the domain model to its wire form.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Role:          user.Role,
		AssociationID: user.AssociationID,
		AvatarURL:     user.AvatarURL,
	}
}
