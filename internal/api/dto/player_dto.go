package dto

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

const dateLayout = "2006-01-02"

// PlayerRequest payload for creating or updating a player.
type PlayerRequest struct {
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

// ToDomain converts the request into a domain player.
func (r PlayerRequest) ToDomain() (*domain.Player, error) {
	dob, err := time.Parse(dateLayout, r.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth must be YYYY-MM-DD", nil)
	}
	return &domain.Player{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  dob,
		Nationality:  r.Nationality,
		Position:     r.Position,
		JerseyNumber: r.JerseyNumber,
		HeightCm:     r.HeightCm,
		WeightKg:     r.WeightKg,
		ProfileImage: r.ProfileImage,
		TeamID:       r.TeamID,
	}, nil
}

// PlayerResponse is the wire form of a player.
type PlayerResponse struct {
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

// FromPlayer maps the domain model to its wire form.
func FromPlayer(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:           player.ID,
		FirstName:    player.FirstName,
		LastName:     player.LastName,
		DateOfBirth:  player.DateOfBirth.Format(dateLayout),
		Nationality:  player.Nationality,
		Position:     player.Position,
		JerseyNumber: player.JerseyNumber,
		HeightCm:     player.HeightCm,
		WeightKg:     player.WeightKg,
		ProfileImage: player.ProfileImage,
		TeamID:       player.TeamID,
		CreatedAt:    player.CreatedAt,
		UpdatedAt:    player.UpdatedAt,
	}
}

// FromPlayers maps a slice of players.
func FromPlayers(players []domain.Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, FromPlayer(&players[i]))
	}
	return out
}
