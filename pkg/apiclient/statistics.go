package apiclient

import (
	"context"
	"net/http"
)

// StatisticService talks to the statistics and performance endpoints.
type StatisticService struct {
	client *Client
}

// NewStatisticService constructs the service.
func NewStatisticService(client *Client) *StatisticService {
	return &StatisticService{client: client}
}

// List fetches all stat lines.
func (s *StatisticService) List(ctx context.Context) ([]StatLine, error) {
	var lines []StatLine
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Statistic/",
	}, &lines)
	return lines, err
}

// Get fetches a single stat line by id.
func (s *StatisticService) Get(ctx context.Context, id string) (*StatLine, error) {
	var line StatLine
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Statistic/" + id,
	}, &line)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Create records a new stat line.
func (s *StatisticService) Create(ctx context.Context, payload StatLinePayload) (*StatLine, error) {
	var line StatLine
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPost,
		Path:   "/Statistic/",
		Body:   payload,
	}, &line)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Update replaces a stat line's mutable fields.
func (s *StatisticService) Update(ctx context.Context, id string, payload StatLinePayload) (*StatLine, error) {
	var line StatLine
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodPut,
		Path:   "/Statistic/" + id,
		Body:   payload,
	}, &line)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Delete removes a stat line.
func (s *StatisticService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, RequestSpec{
		Method: http.MethodDelete,
		Path:   "/Statistic/" + id,
	}, nil)
}

// TeamPerformance fetches aggregated results for a team.
func (s *StatisticService) TeamPerformance(ctx context.Context, teamID string) (*TeamPerformance, error) {
	var perf TeamPerformance
	err := s.client.Do(ctx, RequestSpec{
		Method: http.MethodGet,
		Path:   "/Performance/team/" + teamID,
	}, &perf)
	if err != nil {
		return nil, err
	}
	return &perf, nil
}
