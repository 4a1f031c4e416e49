package domain

import "time"

// Tactic models a saved tactical strategy for a team.
type Tactic struct {
	ID          string
	Name        string
	Description string
	Formation   string
	TeamID      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
