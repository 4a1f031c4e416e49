package domain

import "time"

// MatchStatus tracks the match lifecycle.
type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "UPCOMING"
	MatchStatusLive      MatchStatus = "LIVE"
	MatchStatusCompleted MatchStatus = "COMPLETED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

// MatchType distinguishes competitive contexts.
type MatchType string

const (
	MatchTypeOfficial MatchType = "OFFICIAL"
	MatchTypeFriendly MatchType = "FRIENDLY"
	MatchTypeTraining MatchType = "TRAINING"
)

// Match models a fixture between two teams.
type Match struct {
	ID         string
	Name       *string
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Venue      *string
	KickoffAt  time.Time
	Status     MatchStatus
	Type       MatchType
	SportType  SportType
	Attendance *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
