package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/internal/repository"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

// StatsService manages per-match statistics and derived team performance.
type StatsService struct {
	stats   repository.StatLineRepository
	matches repository.MatchRepository
	logger  *zap.Logger
}

// NewStatsService builds the service.
func NewStatsService(stats repository.StatLineRepository, matches repository.MatchRepository, logger *zap.Logger) *StatsService {
	return &StatsService{stats: stats, matches: matches, logger: logger}
}

// List returns all stat lines.
func (s *StatsService) List(ctx context.Context) ([]domain.StatLine, error) {
	return s.stats.List(ctx)
}

// Get fetches one stat line.
func (s *StatsService) Get(ctx context.Context, id string) (*domain.StatLine, error) {
	return s.stats.GetByID(ctx, id)
}

// Create validates and persists a stat line.
func (s *StatsService) Create(ctx context.Context, line *domain.StatLine) error {
	if err := validateStatLine(line); err != nil {
		return err
	}
	return s.stats.Create(ctx, line)
}

// Update persists stat line changes.
func (s *StatsService) Update(ctx context.Context, line *domain.StatLine) error {
	if err := validateStatLine(line); err != nil {
		return err
	}
	return s.stats.Update(ctx, line)
}

// Delete removes a stat line.
func (s *StatsService) Delete(ctx context.Context, id string) error {
	return s.stats.Delete(ctx, id)
}

// TeamPerformance aggregates completed match results for one team.
func (s *StatsService) TeamPerformance(ctx context.Context, teamID string) (*domain.TeamPerformance, error) {
	matches, err := s.matches.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	perf := &domain.TeamPerformance{TeamID: teamID}
	for _, match := range matches {
		if match.Status != domain.MatchStatusCompleted || match.HomeScore == nil || match.AwayScore == nil {
			continue
		}
		perf.MatchesPlayed++

		scored, conceded := *match.HomeScore, *match.AwayScore
		if match.AwayTeamID == teamID {
			scored, conceded = conceded, scored
		}
		perf.GoalsFor += scored
		perf.GoalsAgainst += conceded

		switch {
		case scored > conceded:
			perf.Wins++
		case scored < conceded:
			perf.Losses++
		default:
			perf.Draws++
		}
	}
	return perf, nil
}

func validateStatLine(line *domain.StatLine) error {
	if line.PlayerID == "" || line.MatchID == "" {
		return apperrors.NewValidationError("player and match required", nil)
	}
	if line.MinutesPlayed < 0 || line.MinutesPlayed > 150 {
		return apperrors.NewValidationError("minutes played out of range", nil)
	}
	if line.PassAccuracy < 0 || line.PassAccuracy > 100 {
		return apperrors.NewValidationError("pass accuracy must be a percentage", nil)
	}
	return nil
}
