package dto

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

// MatchRequest payload for creating or updating a match.
type MatchRequest struct {
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

// ToDomain converts the request into a domain match.
func (r MatchRequest) ToDomain() (*domain.Match, error) {
	kickoff, err := time.Parse(time.RFC3339, r.KickoffAt)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be RFC3339", nil)
	}
	return &domain.Match{
		Name:       r.Name,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		HomeScore:  r.HomeScore,
		AwayScore:  r.AwayScore,
		Venue:      r.Venue,
		KickoffAt:  kickoff,
		Status:     domain.MatchStatus(r.Status),
		Type:       domain.MatchType(r.Type),
		SportType:  domain.SportType(r.SportType),
		Attendance: r.Attendance,
	}, nil
}

// MatchResponse is the wire form of a match.
type MatchResponse struct {
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

// FromMatch maps the domain model to its wire form.
func FromMatch(match *domain.Match) MatchResponse {
	return MatchResponse{
		ID:         match.ID,
		Name:       match.Name,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		HomeScore:  match.HomeScore,
		AwayScore:  match.AwayScore,
		Venue:      match.Venue,
		KickoffAt:  match.KickoffAt,
		Status:     string(match.Status),
		Type:       string(match.Type),
		SportType:  string(match.SportType),
		Attendance: match.Attendance,
		CreatedAt:  match.CreatedAt,
		UpdatedAt:  match.UpdatedAt,
	}
}

// FromMatches maps a slice of matches.
func FromMatches(matches []domain.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, FromMatch(&matches[i]))
	}
	return out
}
