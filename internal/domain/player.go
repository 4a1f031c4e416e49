package domain

import "time"

// Player models a registered athlete.
type Player struct {
	ID           string
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	Nationality  string
	Position     string
	JerseyNumber int
	HeightCm     *int
	WeightKg     *int
	ProfileImage *string
	TeamID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
