package apiclient

import (
	"context"
	"net/http"
)

// PlayerService talks to the player endpoints. It does path construction and
// envelope unwrapping only; validation and side effects live server-side.
type PlayerService struct {
	client *Client
}

// NewPlayerService constructs the service.
func NewPlayerService(client *Client) *PlayerService {
	return &PlayerService{client: client}
}

// List fetches all players.
func (s *PlayerService) List(ctx context.Context) ([]Player, error) {
	var players []Player
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Player/",
	}, &players)
	return players, err
}

// Get fetches a single player by id.
func (s *PlayerService) Get(ctx context.Context, id string) (*Player, error) {
	var player Player
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Player/" + id,
	}, &player)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Create registers a new player.
func (s *PlayerService) Create(ctx context.Context, payload PlayerPayload) (*Player, error) {
	var player Player
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/Player/",
		Body:   payload,
	}, &player)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Update replaces a player's mutable fields.
func (s *PlayerService) Update(ctx context.Context, id string, payload PlayerPayload) (*Player, error) {
	var player Player
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Player/" + id,
		Body:   payload,
	}, &player)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Delete removes a player.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodDelete,
		Path:   "/Player/" + id,
	}, nil)
}
