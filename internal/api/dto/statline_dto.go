package dto

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
)

// StatLineRequest payload for creating or updating a stat line.
type StatLineRequest struct {
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

// ToDomain converts the request into a domain stat line.
func (r StatLineRequest) ToDomain() *domain.StatLine {
	return &domain.StatLine{
		PlayerID:      r.PlayerID,
		MatchID:       r.MatchID,
		MinutesPlayed: r.MinutesPlayed,
		Goals:         r.Goals,
		Assists:       r.Assists,
		Shots:         r.Shots,
		Passes:        r.Passes,
		PassAccuracy:  r.PassAccuracy,
		Rating:        r.Rating,
	}
}

// StatLineResponse is the wire form of a stat line.
type StatLineResponse struct {
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

// FromStatLine maps the domain model to its wire form.
func FromStatLine(line *domain.StatLine) StatLineResponse {
	return StatLineResponse{
		ID:            line.ID,
		PlayerID:      line.PlayerID,
		MatchID:       line.MatchID,
		MinutesPlayed: line.MinutesPlayed,
		Goals:         line.Goals,
		Assists:       line.Assists,
		Shots:         line.Shots,
		Passes:        line.Passes,
		PassAccuracy:  line.PassAccuracy,
		Rating:        line.Rating,
		CreatedAt:     line.CreatedAt,
		UpdatedAt:     line.UpdatedAt,
	}
}

// FromStatLines maps a slice of stat lines.
func FromStatLines(lines []domain.StatLine) []StatLineResponse {
	out := make([]StatLineResponse, 0, len(lines))
	for i := range lines {
		out = append(out, FromStatLine(&lines[i]))
	}
	return out
}

// TeamPerformanceResponse is the wire form of aggregated team results.
type TeamPerformanceResponse struct {
	TeamID        string `json:"teamId"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goalsFor"`
	GoalsAgainst  int    `json:"goalsAgainst"`
}

// FromTeamPerformance maps the domain aggregate to its wire form.
func FromTeamPerformance(perf *domain.TeamPerformance) TeamPerformanceResponse {
	return TeamPerformanceResponse{
		TeamID:        perf.TeamID,
		MatchesPlayed: perf.MatchesPlayed,
		Wins:          perf.Wins,
		Draws:         perf.Draws,
		Losses:        perf.Losses,
		GoalsFor:      perf.GoalsFor,
		GoalsAgainst:  perf.GoalsAgainst,
	}
}
