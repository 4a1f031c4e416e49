package apiclient

import (
	"context"
	"net/http"
)

// TeamService talks to the team endpoints.
type TeamService struct {
	client *Client
}

// NewTeamService constructs the service.
func NewTeamService(client *Client) *TeamService {
	return &TeamService{client: client}
}

// List fetches all teams.
func (s *TeamService) List(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Team/",
	}, &teams)
	return teams, err
}

// Get fetches a single team by id.
func (s *TeamService) Get(ctx context.Context, id string) (*Team, error) {
	var team Team
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Team/" + id,
	}, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Create registers a new team.
func (s *TeamService) Create(ctx context.Context, payload TeamPayload) (*Team, error) {
	var team Team
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/Team/",
		Body:   payload,
	}, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update replaces a team's mutable fields.
func (s *TeamService) Update(ctx context.Context, id string, payload TeamPayload) (*Team, error) {
	var team Team
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Team/" + id,
		Body:   payload,
	}, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdatePlayers reassigns the given players to this team.
func (s *TeamService) UpdatePlayers(ctx context.Context, id string, playerIDs []string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Team/" + id + "/players",
		Body:   map[string][]string{"playerIds": playerIDs},
	}, nil)
}

// Delete removes a team.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodDelete,
		Path:   "/Team/" + id,
	}, nil)
}
