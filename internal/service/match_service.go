package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/internal/events"
	"github.com/sportsmgr/club-service/internal/repository"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

// MatchService manages fixtures.
type MatchService struct {
	matches    repository.MatchRepository
	teams      repository.TeamRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMatchService builds the service.
func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, dispatcher events.Dispatcher, logger *zap.Logger) *MatchService {
	return &MatchService{matches: matches, teams: teams, dispatcher: dispatcher, logger: logger}
}

// List returns all matches.
func (s *MatchService) List(ctx context.Context) ([]domain.Match, error) {
	return s.matches.List(ctx)
}

// Get fetches one match.
func (s *MatchService) Get(ctx context.Context, id string) (*domain.Match, error) {
	return s.matches.GetByID(ctx, id)
}

// Create validates and persists a match.
func (s *MatchService) Create(ctx context.Context, match *domain.Match) error {
	if err := s.validate(ctx, match); err != nil {
		return err
	}
	if match.Status == "" {
		match.Status = domain.MatchStatusUpcoming
	}
	if match.Type == "" {
		match.Type = domain.MatchTypeOfficial
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return err
	}
	s.publish(ctx, events.EventMatchScheduled, match.ID, events.MatchScheduledPayload{
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		KickoffAt:  match.KickoffAt,
	})
	return nil
}

// Update persists match changes and emits a completion event when the
// status transitions to COMPLETED.
func (s *MatchService) Update(ctx context.Context, match *domain.Match) error {
	if err := s.validate(ctx, match); err != nil {
		return err
	}

	previous, err := s.matches.GetByID(ctx, match.ID)
	if err != nil {
		return err
	}
	if err := s.matches.Update(ctx, match); err != nil {
		return err
	}

	if previous.Status != domain.MatchStatusCompleted && match.Status == domain.MatchStatusCompleted {
		payload := events.MatchCompletedPayload{}
		if match.HomeScore != nil {
			payload.HomeScore = *match.HomeScore
		}
		if match.AwayScore != nil {
			payload.AwayScore = *match.AwayScore
		}
		s.publish(ctx, events.EventMatchCompleted, match.ID, payload)
	}
	return nil
}

// Delete removes a match.
func (s *MatchService) Delete(ctx context.Context, id string) error {
	return s.matches.Delete(ctx, id)
}

func (s *MatchService) validate(ctx context.Context, match *domain.Match) error {
	if match.HomeTeamID == "" || match.AwayTeamID == "" {
		return apperrors.NewValidationError("both teams required", nil)
	}
	if match.HomeTeamID == match.AwayTeamID {
		return apperrors.NewValidationError("a team cannot play itself", nil)
	}
	if match.KickoffAt.IsZero() {
		return apperrors.NewValidationError("kickoff time required", nil)
	}
	if _, err := s.teams.GetByID(ctx, match.HomeTeamID); err != nil {
		return err
	}
	if _, err := s.teams.GetByID(ctx, match.AwayTeamID); err != nil {
		return err
	}
	return nil
}

func (s *MatchService) publish(ctx context.Context, eventType events.EventType, entityID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
