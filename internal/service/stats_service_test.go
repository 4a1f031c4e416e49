package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/domain"
)

type fakeStatRepo struct {
	lines map[string]*domain.StatLine
}

func newFakeStatRepo() *fakeStatRepo {
	return &fakeStatRepo{lines: make(map[string]*domain.StatLine)}
}

func (r *fakeStatRepo) Create(_ context.Context, line *domain.StatLine) error {
	line.ID = "line-1"
	r.lines[line.ID] = line
	return nil
}

func (r *fakeStatRepo) Update(_ context.Context, line *domain.StatLine) error {
	if _, ok := r.lines[line.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.lines[line.ID] = line
	return nil
}

func (r *fakeStatRepo) Delete(_ context.Context, id string) error {
	delete(r.lines, id)
	return nil
}

func (r *fakeStatRepo) GetByID(_ context.Context, id string) (*domain.StatLine, error) {
	line, ok := r.lines[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return line, nil
}

func (r *fakeStatRepo) List(_ context.Context) ([]domain.StatLine, error) {
	out := make([]domain.StatLine, 0, len(r.lines))
	for _, line := range r.lines {
		out = append(out, *line)
	}
	return out, nil
}

func (r *fakeStatRepo) ListByPlayer(_ context.Context, playerID string) ([]domain.StatLine, error) {
	var out []domain.StatLine
	for _, line := range r.lines {
		if line.PlayerID == playerID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeStatRepo) ListByMatch(_ context.Context, matchID string) ([]domain.StatLine, error) {
	var out []domain.StatLine
	for _, line := range r.lines {
		if line.MatchID == matchID {
			out = append(out, *line)
		}
	}
	return out, nil
}

type fakeMatchRepo struct {
	matches []domain.Match
}

func (r *fakeMatchRepo) Create(_ context.Context, match *domain.Match) error {
	r.matches = append(r.matches, *match)
	return nil
}

func (r *fakeMatchRepo) Update(_ context.Context, _ *domain.Match) error { return nil }
func (r *fakeMatchRepo) Delete(_ context.Context, _ string) error        { return nil }

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*domain.Match, error) {
	for i := range r.matches {
		if r.matches[i].ID == id {
			return &r.matches[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeMatchRepo) List(_ context.Context) ([]domain.Match, error) {
	return append([]domain.Match(nil), r.matches...), nil
}

func (r *fakeMatchRepo) ListByTeam(_ context.Context, teamID string) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func intPtr(n int) *int { return &n }

func completedMatch(home, away string, homeScore, awayScore int) domain.Match {
	return domain.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
		Status:     domain.MatchStatusCompleted,
	}
}

func TestTeamPerformanceAggregation(t *testing.T) {
	matches := &fakeMatchRepo{matches: []domain.Match{
		completedMatch("team-1", "team-2", 3, 1), // home win
		completedMatch("team-3", "team-1", 2, 2), // away draw
		completedMatch("team-2", "team-1", 4, 0), // away loss
		{HomeTeamID: "team-1", AwayTeamID: "team-4", Status: domain.MatchStatusUpcoming},
		{HomeTeamID: "team-1", AwayTeamID: "team-5", Status: domain.MatchStatusCompleted}, // no scores recorded
		completedMatch("team-2", "team-3", 1, 0),                                          // other teams entirely
	}}

	svc := NewStatsService(newFakeStatRepo(), matches, zap.NewNop())

	perf, err := svc.TeamPerformance(context.Background(), "team-1")
	require.NoError(t, err)

	assert.Equal(t, "team-1", perf.TeamID)
	assert.Equal(t, 3, perf.MatchesPlayed)
	assert.Equal(t, 1, perf.Wins)
	assert.Equal(t, 1, perf.Draws)
	assert.Equal(t, 1, perf.Losses)
	assert.Equal(t, 5, perf.GoalsFor, "away goals count from the away side's perspective")
	assert.Equal(t, 7, perf.GoalsAgainst)
}

func TestTeamPerformanceNoMatches(t *testing.T) {
	svc := NewStatsService(newFakeStatRepo(), &fakeMatchRepo{}, zap.NewNop())

	perf, err := svc.TeamPerformance(context.Background(), "team-9")
	require.NoError(t, err)
	assert.Zero(t, perf.MatchesPlayed)
}

func TestStatLineValidation(t *testing.T) {
	svc := NewStatsService(newFakeStatRepo(), &fakeMatchRepo{}, zap.NewNop())

	cases := []struct {
		name string
		line domain.StatLine
	}{
		{"missing player", domain.StatLine{MatchID: "match-1"}},
		{"missing match", domain.StatLine{PlayerID: "player-1"}},
		{"negative minutes", domain.StatLine{PlayerID: "player-1", MatchID: "match-1", MinutesPlayed: -1}},
		{"impossible minutes", domain.StatLine{PlayerID: "player-1", MatchID: "match-1", MinutesPlayed: 200}},
		{"bad pass accuracy", domain.StatLine{PlayerID: "player-1", MatchID: "match-1", PassAccuracy: 120}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := tc.line
			assert.Error(t, svc.Create(context.Background(), &line))
		})
	}

	valid := domain.StatLine{PlayerID: "player-1", MatchID: "match-1", MinutesPlayed: 90, PassAccuracy: 84.5}
	assert.NoError(t, svc.Create(context.Background(), &valid))
}
