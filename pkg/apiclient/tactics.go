package apiclient

import (
	"context"
	"net/http"
)

// TacticService talks to the tactic endpoints.
type TacticService struct {
	client *Client
}

// NewTacticService constructs the service.
func NewTacticService(client *Client) *TacticService {
	return &TacticService{client: client}
}

// List fetches all tactics.
func (s *TacticService) List(ctx context.Context) ([]Tactic, error) {
	var tactics []Tactic
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Tactic/",
	}, &tactics)
	return tactics, err
}

// Get fetches a single tactic by id.
func (s *TacticService) Get(ctx context.Context, id string) (*Tactic, error) {
	var tactic Tactic
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Tactic/" + id,
	}, &tactic)
	if err != nil {
		return nil, err
	}
	return &tactic, nil
}

// Create records a new tactic. Authorship is derived server-side from the
// bearer token.
func (s *TacticService) Create(ctx context.Context, payload TacticPayload) (*Tactic, error) {
	var tactic Tactic
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/Tactic/",
		Body:   payload,
	}, &tactic)
	if err != nil {
		return nil, err
	}
	return &tactic, nil
}

// Update replaces a tactic's mutable fields.
func (s *TacticService) Update(ctx context.Context, id string, payload TacticPayload) (*Tactic, error) {
	var tactic Tactic
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Tactic/" + id,
		Body:   payload,
	}, &tactic)
	if err != nil {
		return nil, err
	}
	return &tactic, nil
}

// Delete removes a tactic.
func (s *TacticService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodDelete,
		Path:   "/Tactic/" + id,
	}, nil)
}
