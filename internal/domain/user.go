package domain

import "time"

// User is the domain model for dashboard accounts.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string
	Role          Role
	AssociationID *string
	AvatarURL     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayName joins first and last name.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
