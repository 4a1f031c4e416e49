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

// TacticService manages tactical strategies.
type TacticService struct {
	tactics    repository.TacticRepository
	teams      repository.TeamRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTacticService builds the service.
func NewTacticService(tactics repository.TacticRepository, teams repository.TeamRepository, dispatcher events.Dispatcher, logger *zap.Logger) *TacticService {
	return &TacticService{tactics: tactics, teams: teams, dispatcher: dispatcher, logger: logger}
}

// List returns all tactics.
func (s *TacticService) List(ctx context.Context) ([]domain.Tactic, error) {
	return s.tactics.List(ctx)
}

// Get fetches one tactic.
func (s *TacticService) Get(ctx context.Context, id string) (*domain.Tactic, error) {
	return s.tactics.GetByID(ctx, id)
}

// Create validates and persists a tactic.
func (s *TacticService) Create(ctx context.Context, tactic *domain.Tactic) error {
	if err := s.validate(ctx, tactic); err != nil {
		return err
	}
	return s.tactics.Create(ctx, tactic)
}

// Update persists tactic changes.
func (s *TacticService) Update(ctx context.Context, tactic *domain.Tactic) error {
	if err := s.validate(ctx, tactic); err != nil {
		return err
	}
	if err := s.tactics.Update(ctx, tactic); err != nil {
		return err
	}
	s.publish(ctx, events.EventTacticUpdated, tactic.ID, events.TacticUpdatedPayload{
		TeamID:    tactic.TeamID,
		Formation: tactic.Formation,
	})
	return nil
}

// Delete removes a tactic.
func (s *TacticService) Delete(ctx context.Context, id string) error {
	return s.tactics.Delete(ctx, id)
}

func (s *TacticService) validate(ctx context.Context, tactic *domain.Tactic) error {
	if tactic.Name == "" || tactic.Formation == "" {
		return apperrors.NewValidationError("tactic name and formation required", nil)
	}
	if tactic.TeamID == "" {
		return apperrors.NewValidationError("team required", nil)
	}
	if _, err := s.teams.GetByID(ctx, tactic.TeamID); err != nil {
		return err
	}
	return nil
}

func (s *TacticService) publish(ctx context.Context, eventType events.EventType, entityID string, payload interface{}) {
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
