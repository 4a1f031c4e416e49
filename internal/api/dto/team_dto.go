package dto

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
)

// TeamRequest payload for creating or updating a team.
type TeamRequest struct {
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

// ToDomain converts the request into a domain team.
func (r TeamRequest) ToDomain() *domain.Team {
	return &domain.Team{
		Name:      r.Name,
		LeagueID:  r.LeagueID,
		Country:   r.Country,
		City:      r.City,
		Division:  r.Division,
		Venue:     r.Venue,
		Founded:   r.Founded,
		Type:      domain.TeamType(r.Type),
		SportType: domain.SportType(r.SportType),
		LogoURL:   r.LogoURL,
	}
}

// TeamResponse is the wire form of a team.
type TeamResponse struct {
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

// FromTeam maps the domain model to its wire form.
func FromTeam(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		LeagueID:  team.LeagueID,
		Country:   team.Country,
		City:      team.City,
		Division:  team.Division,
		Venue:     team.Venue,
		Founded:   team.Founded,
		Type:      string(team.Type),
		SportType: string(team.SportType),
		LogoURL:   team.LogoURL,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

// FromTeams maps a slice of teams.
func FromTeams(teams []domain.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, FromTeam(&teams[i]))
	}
	return out
}

// TeamPlayersRequest reassigns players to a team.
type TeamPlayersRequest struct {
	PlayerIDs []string `json:"playerIds"`
}
