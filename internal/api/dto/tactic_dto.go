package dto

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
)

// TacticRequest payload for creating or updating a tactic.
type TacticRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Formation   string `json:"formation"`
	TeamID      string `json:"teamId"`
}

// ToDomain converts the request into a domain tactic.
func (r TacticRequest) ToDomain(createdBy string) *domain.Tactic {
	return &domain.Tactic{
		Name:        r.Name,
		Description: r.Description,
		Formation:   r.Formation,
		TeamID:      r.TeamID,
		CreatedBy:   createdBy,
	}
}

// TacticResponse is the wire form of a tactic.
type TacticResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Formation   string    `json:"formation"`
	TeamID      string    `json:"teamId"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromTactic maps the domain model to its wire form.
func FromTactic(tactic *domain.Tactic) TacticResponse {
	return TacticResponse{
		ID:          tactic.ID,
		Name:        tactic.Name,
		Description: tactic.Description,
		Formation:   tactic.Formation,
		TeamID:      tactic.TeamID,
		CreatedBy:   tactic.CreatedBy,
		CreatedAt:   tactic.CreatedAt,
		UpdatedAt:   tactic.UpdatedAt,
	}
}

// FromTactics maps a slice of tactics.
func FromTactics(tactics []domain.Tactic) []TacticResponse {
	out := make([]TacticResponse, 0, len(tactics))
	for i := range tactics {
		out = append(out, FromTactic(&tactics[i]))
	}
	return out
}
