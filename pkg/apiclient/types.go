package apiclient

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
)

// User is the wire form of an authenticated account.
type User struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	AssociationID *string     `json:"associationId,omitempty"`
	AvatarURL     *string     `json:"avatarUrl,omitempty"`
}

// Player is the wire form of a player.
type Player struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Nationality  string    `json:"nationality"`
	Position     string    `json:"position"`
	JerseyNumber int       `json:"jerseyNumber"`
	HeightCm     *int      `json:"height,omitempty"`
	WeightKg     *int      `json:"weight,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	TeamID       *string   `json:"teamId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PlayerPayload is the create/update request body for players.
type PlayerPayload struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	DateOfBirth  string  `json:"dateOfBirth"`
	Nationality  string  `json:"nationality"`
	Position     string  `json:"position"`
	JerseyNumber int     `json:"jerseyNumber"`
	HeightCm     *int    `json:"height,omitempty"`
	WeightKg     *int    `json:"weight,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	TeamID       *string `json:"teamId,omitempty"`
}

// Team is the wire form of a team.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LeagueID  string    `json:"leagueId"`
	Country   *string   `json:"country,omitempty"`
	City      *string   `json:"city,omitempty"`
	Division  *string   `json:"division,omitempty"`
	Venue     *string   `json:"venue,omitempty"`
	Founded   *string   `json:"founded,omitempty"`
	Type      string    `json:"type"`
	SportType string    `json:"sport_type"`
	LogoURL   *string   `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamPayload is the create/update request body for teams.
type TeamPayload struct {
	Name      string  `json:"name"`
	LeagueID  string  `json:"leagueId"`
	Country   *string `json:"country,omitempty"`
	City      *string `json:"city,omitempty"`
	Division  *string `json:"division,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	Founded   *string `json:"founded,omitempty"`
	Type      string  `json:"type"`
	SportType string  `json:"sport_type"`
	LogoURL   *string `json:"logo,omitempty"`
}

// Match is the wire form of a match.
type Match struct {
	ID         string    `json:"id"`
	Name       *string   `json:"name,omitempty"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	HomeScore  *int      `json:"homeScore,omitempty"`
	AwayScore  *int      `json:"awayScore,omitempty"`
	Venue      *string   `json:"venue,omitempty"`
	KickoffAt  time.Time `json:"date"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	SportType  string    `json:"sport_type"`
	Attendance *int      `json:"attendance,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MatchPayload is the create/update request body for matches.
type MatchPayload struct {
	Name       *string `json:"name,omitempty"`
	HomeTeamID string  `json:"homeTeamId"`
	AwayTeamID string  `json:"awayTeamId"`
	HomeScore  *int    `json:"homeScore,omitempty"`
	AwayScore  *int    `json:"awayScore,omitempty"`
	Venue      *string `json:"venue,omitempty"`
	KickoffAt  string  `json:"date"`
	Status     string  `json:"status"`
	Type       string  `json:"type"`
	SportType  string  `json:"sport_type"`
	Attendance *int    `json:"attendance,omitempty"`
}

// Tactic is the wire form of a tactical strategy.
type Tactic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Formation   string    `json:"formation"`
	TeamID      string    `json:"teamId"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TacticPayload is the create/update request body for tactics.
type TacticPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Formation   string `json:"formation"`
	TeamID      string `json:"teamId"`
}

// StatLine is the wire form of per-match player statistics.
type StatLine struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"playerId"`
	MatchID       string    `json:"matchId"`
	MinutesPlayed int       `json:"minutesPlayed"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	Shots         int       `json:"shots"`
	Passes        int       `json:"passes"`
	PassAccuracy  float64   `json:"passAccuracy"`
	Rating        *float64  `json:"rating,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StatLinePayload is the create/update request body for stat lines.
type StatLinePayload struct {
	PlayerID      string   `json:"playerId"`
	MatchID       string   `json:"matchId"`
	MinutesPlayed int      `json:"minutesPlayed"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	Shots         int      `json:"shots"`
	Passes        int      `json:"passes"`
	PassAccuracy  float64  `json:"passAccuracy"`
	Rating        *float64 `json:"rating,omitempty"`
}

// TeamPerformance is the wire form of aggregated team results.
type TeamPerformance struct {
	TeamID        string `json:"teamId"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goalsFor"`
	GoalsAgainst  int    `json:"goalsAgainst"`
}
