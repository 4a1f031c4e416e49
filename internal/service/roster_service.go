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

// RosterService manages teams and players. The jersey number uniqueness
// rule is enforced here authoritatively; any client-side check is advisory.
type RosterService struct {
	teams      repository.TeamRepository
	players    repository.PlayerRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRosterService builds the service.
func NewRosterService(teams repository.TeamRepository, players repository.PlayerRepository, dispatcher events.Dispatcher, logger *zap.Logger) *RosterService {
	return &RosterService{teams: teams, players: players, dispatcher: dispatcher, logger: logger}
}

// ListTeams returns all teams.
func (s *RosterService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

// GetTeam fetches one team.
func (s *RosterService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

// CreateTeam validates and persists a team.
func (s *RosterService) CreateTeam(ctx context.Context, team *domain.Team) error {
	if team.Name == "" {
		return apperrors.NewValidationError("team name required", nil)
	}
	if team.Type == "" {
		team.Type = domain.TeamTypeClub
	}
	if team.SportType == "" {
		team.SportType = domain.SportFootball
	}
	return s.teams.Create(ctx, team)
}

// UpdateTeam persists changes to a team.
func (s *RosterService) UpdateTeam(ctx context.Context, team *domain.Team) error {
	if team.Name == "" {
		return apperrors.NewValidationError("team name required", nil)
	}
	return s.teams.Update(ctx, team)
}

// DeleteTeam removes a team.
func (s *RosterService) DeleteTeam(ctx context.Context, id string) error {
	return s.teams.Delete(ctx, id)
}

// UpdateTeamPlayers reassigns the given players to a team.
func (s *RosterService) UpdateTeamPlayers(ctx context.Context, teamID string, playerIDs []string) error {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return err
	}
	if len(playerIDs) == 0 {
		return nil
	}
	if err := s.players.AssignTeam(ctx, playerIDs, teamID); err != nil {
		return err
	}
	for _, id := range playerIDs {
		s.publish(ctx, events.EventPlayerTransfered, id, events.PlayerTransferedPayload{ToTeamID: &teamID})
	}
	return nil
}

// ListPlayers returns all players.
func (s *RosterService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.players.List(ctx)
}

// GetPlayer fetches one player.
func (s *RosterService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return s.players.GetByID(ctx, id)
}

// CreatePlayer validates and persists a player.
func (s *RosterService) CreatePlayer(ctx context.Context, player *domain.Player) error {
	if err := s.validatePlayer(ctx, player, ""); err != nil {
		return err
	}
	if err := s.players.Create(ctx, player); err != nil {
		return err
	}
	s.publish(ctx, events.EventPlayerCreated, player.ID, events.PlayerCreatedPayload{
		TeamID:       player.TeamID,
		JerseyNumber: player.JerseyNumber,
		LastName:     player.LastName,
	})
	return nil
}

// UpdatePlayer validates and persists player changes.
func (s *RosterService) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if err := s.validatePlayer(ctx, player, player.ID); err != nil {
		return err
	}
	return s.players.Update(ctx, player)
}

// DeletePlayer removes a player.
func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	return s.players.Delete(ctx, id)
}

func (s *RosterService) validatePlayer(ctx context.Context, player *domain.Player, excludeID string) error {
	if player.FirstName == "" || player.LastName == "" {
		return apperrors.NewValidationError("player name required", nil)
	}
	if player.JerseyNumber < 1 || player.JerseyNumber > 99 {
		return apperrors.NewValidationError("jersey number must be between 1 and 99", map[string]any{
			"jersey_number": player.JerseyNumber,
		})
	}
	if player.TeamID == nil {
		return nil
	}

	teammates, err := s.players.ListByTeam(ctx, *player.TeamID)
	if err != nil {
		return err
	}
	for _, mate := range teammates {
		if mate.ID == excludeID {
			continue
		}
		if mate.JerseyNumber == player.JerseyNumber {
			return apperrors.NewConflict("jersey number already taken on this team", map[string]any{
				"jersey_number": player.JerseyNumber,
				"team_id":       *player.TeamID,
			})
		}
	}
	return nil
}

func (s *RosterService) publish(ctx context.Context, eventType events.EventType, entityID string, payload interface{}) {
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
