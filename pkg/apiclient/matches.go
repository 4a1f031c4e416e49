package apiclient

import (
	"context"
	"net/http"
)

// MatchService talks to the match endpoints.
type MatchService struct {
	client *Client
}

// NewMatchService constructs the service.
func NewMatchService(client *Client) *MatchService {
	return &MatchService{client: client}
}

// List fetches all matches.
func (s *MatchService) List(ctx context.Context) ([]Match, error) {
	var matches []Match
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Match/",
	}, &matches)
	return matches, err
}

// Get fetches a single match by id.
func (s *MatchService) Get(ctx context.Context, id string) (*Match, error) {
	var match Match
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Match/" + id,
	}, &match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Create schedules a new match.
func (s *MatchService) Create(ctx context.Context, payload MatchPayload) (*Match, error) {
	var match Match
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/Match/",
		Body:   payload,
	}, &match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Update replaces a match's mutable fields.
func (s *MatchService) Update(ctx context.Context, id string, payload MatchPayload) (*Match, error) {
	var match Match
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Match/" + id,
		Body:   payload,
	}, &match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Delete removes a match.
func (s *MatchService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodDelete,
		Path:   "/Match/" + id,
	}, nil)
}
