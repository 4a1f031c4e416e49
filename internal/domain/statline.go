package domain

import "time"

// StatLine records a single player's statistics for one match.
type StatLine struct {
	ID            string
	PlayerID      string
	MatchID       string
	MinutesPlayed int
	Goals         int
	Assists       int
	Shots         int
	Passes        int
	PassAccuracy  float64
	Rating        *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TeamPerformance aggregates stat lines for a team across matches.
type TeamPerformance struct {
	TeamID        string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
}
