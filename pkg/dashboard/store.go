package dashboard

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/pkg/apiclient"
)

// Store caches backend collections for the dashboard views. Every mutation
// delegates to the backend and then refetches the affected collection before
// returning, so a caller that writes and immediately reads observes its own
// write. A failed mutation leaves the cached collection untouched.
type Store struct {
	mu         sync.RWMutex
	players    []apiclient.Player
	teams      []apiclient.Team
	matches    []apiclient.Match
	tactics    []apiclient.Tactic
	statistics []apiclient.StatLine

	playerAPI    *apiclient.PlayerService
	teamAPI      *apiclient.TeamService
	matchAPI     *apiclient.MatchService
	tacticAPI    *apiclient.TacticService
	statisticAPI *apiclient.StatisticService

	toasts *ToastRelay
	logger *zap.Logger
}

// StoreConfig bundles the store's dependencies.
type StoreConfig struct {
	Players    *apiclient.PlayerService
	Teams      *apiclient.TeamService
	Matches    *apiclient.MatchService
	Tactics    *apiclient.TacticService
	Statistics *apiclient.StatisticService
	Toasts     *ToastRelay
	Logger     *zap.Logger
}

// NewStore builds a store. Toasts and logger may be nil.
func NewStore(cfg StoreConfig) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		playerAPI:    cfg.Players,
		teamAPI:      cfg.Teams,
		matchAPI:     cfg.Matches,
		tacticAPI:    cfg.Tactics,
		statisticAPI: cfg.Statistics,
		toasts:       cfg.Toasts,
		logger:       logger,
	}
}

// Players returns the cached player collection.
func (s *Store) Players() []apiclient.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]apiclient.Player(nil), s.players...)
}

// Teams returns the cached team collection.
func (s *Store) Teams() []apiclient.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]apiclient.Team(nil), s.teams...)
}

// Matches returns the cached match collection.
func (s *Store) Matches() []apiclient.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]apiclient.Match(nil), s.matches...)
}

// Tactics returns the cached tactic collection.
func (s *Store) Tactics() []apiclient.Tactic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]apiclient.Tactic(nil), s.tactics...)
}

// Statistics returns the cached stat line collection.
func (s *Store) Statistics() []apiclient.StatLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]apiclient.StatLine(nil), s.statistics...)
}

// FetchPlayers replaces the player collection from the backend.
func (s *Store) FetchPlayers(ctx context.Context) error {
	players, err := s.playerAPI.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.players = players
	s.mu.Unlock()
	return nil
}

// FetchTeams replaces the team collection from the backend.
func (s *Store) FetchTeams(ctx context.Context) error {
	teams, err := s.teamAPI.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.teams = teams
	s.mu.Unlock()
	return nil
}

// FetchMatches replaces the match collection from the backend.
func (s *Store) FetchMatches(ctx context.Context) error {
	matches, err := s.matchAPI.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.matches = matches
	s.mu.Unlock()
	return nil
}

// FetchTactics replaces the tactic collection from the backend.
func (s *Store) FetchTactics(ctx context.Context) error {
	tactics, err := s.tacticAPI.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tactics = tactics
	s.mu.Unlock()
	return nil
}

// FetchStatistics replaces the stat line collection from the backend.
func (s *Store) FetchStatistics(ctx context.Context) error {
	lines, err := s.statisticAPI.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.statistics = lines
	s.mu.Unlock()
	return nil
}

// CheckJerseyAvailable is an advisory pre-submission check against the cached
// roster: it reports whether the jersey number is free on the team, ignoring
// excludeID so edits do not collide with themselves. The backend rechecks on
// write, so a stale cache can only delay the conflict, not hide it.
func (s *Store) CheckJerseyAvailable(teamID string, jerseyNumber int, excludeID string) bool {
	if teamID == "" {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.ID == excludeID || p.TeamID == nil || *p.TeamID != teamID {
			continue
		}
		if p.JerseyNumber == jerseyNumber {
			return false
		}
	}
	return true
}

// CreatePlayer validates the jersey locally, submits, and refetches.
func (s *Store) CreatePlayer(ctx context.Context, payload apiclient.PlayerPayload) error {
	if payload.TeamID != nil && !s.CheckJerseyAvailable(*payload.TeamID, payload.JerseyNumber, "") {
		return fmt.Errorf("jersey number %d is already taken on this team", payload.JerseyNumber)
	}
	if _, err := s.playerAPI.Create(ctx, payload); err != nil {
		s.fail("Could not create player", err)
		return err
	}
	s.success("Player created")
	return s.FetchPlayers(ctx)
}

// UpdatePlayer validates the jersey locally, submits, and refetches.
func (s *Store) UpdatePlayer(ctx context.Context, id string, payload apiclient.PlayerPayload) error {
	if payload.TeamID != nil && !s.CheckJerseyAvailable(*payload.TeamID, payload.JerseyNumber, id) {
		return fmt.Errorf("jersey number %d is already taken on this team", payload.JerseyNumber)
	}
	if _, err := s.playerAPI.Update(ctx, id, payload); err != nil {
		s.fail("Could not update player", err)
		return err
	}
	s.success("Player updated")
	return s.FetchPlayers(ctx)
}

// DeletePlayer submits the deletion and refetches.
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	if err := s.playerAPI.Delete(ctx, id); err != nil {
		s.fail("Could not delete player", err)
		return err
	}
	s.success("Player deleted")
	return s.FetchPlayers(ctx)
}

// CreateTeam submits the new team and refetches.
func (s *Store) CreateTeam(ctx context.Context, payload apiclient.TeamPayload) error {
	if _, err := s.teamAPI.Create(ctx, payload); err != nil {
		s.fail("Could not create team", err)
		return err
	}
	s.success("Team created")
	return s.FetchTeams(ctx)
}

// UpdateTeam submits the change and refetches.
func (s *Store) UpdateTeam(ctx context.Context, id string, payload apiclient.TeamPayload) error {
	if _, err := s.teamAPI.Update(ctx, id, payload); err != nil {
		s.fail("Could not update team", err)
		return err
	}
	s.success("Team updated")
	return s.FetchTeams(ctx)
}

// UpdateTeamPlayers reassigns players to a team and refetches both the team
// and player collections, since the write touches both.
func (s *Store) UpdateTeamPlayers(ctx context.Context, id string, playerIDs []string) error {
	if err := s.teamAPI.UpdatePlayers(ctx, id, playerIDs); err != nil {
		s.fail("Could not update roster", err)
		return err
	}
	s.success("Roster updated")
	if err := s.FetchTeams(ctx); err != nil {
		return err
	}
	return s.FetchPlayers(ctx)
}

// DeleteTeam submits the deletion and refetches.
func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	if err := s.teamAPI.Delete(ctx, id); err != nil {
		s.fail("Could not delete team", err)
		return err
	}
	s.success("Team deleted")
	return s.FetchTeams(ctx)
}

// CreateMatch submits the new match and refetches.
func (s *Store) CreateMatch(ctx context.Context, payload apiclient.MatchPayload) error {
	if _, err := s.matchAPI.Create(ctx, payload); err != nil {
		s.fail("Could not schedule match", err)
		return err
	}
	s.success("Match scheduled")
	return s.FetchMatches(ctx)
}

// UpdateMatch submits the change and refetches.
func (s *Store) UpdateMatch(ctx context.Context, id string, payload apiclient.MatchPayload) error {
	if _, err := s.matchAPI.Update(ctx, id, payload); err != nil {
		s.fail("Could not update match", err)
		return err
	}
	s.success("Match updated")
	return s.FetchMatches(ctx)
}

// DeleteMatch submits the deletion and refetches.
func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	if err := s.matchAPI.Delete(ctx, id); err != nil {
		s.fail("Could not delete match", err)
		return err
	}
	s.success("Match deleted")
	return s.FetchMatches(ctx)
}

// CreateTactic submits the new tactic and refetches.
func (s *Store) CreateTactic(ctx context.Context, payload apiclient.TacticPayload) error {
	if _, err := s.tacticAPI.Create(ctx, payload); err != nil {
		s.fail("Could not create tactic", err)
		return err
	}
	s.success("Tactic created")
	return s.FetchTactics(ctx)
}

// UpdateTactic submits the change and refetches.
func (s *Store) UpdateTactic(ctx context.Context, id string, payload apiclient.TacticPayload) error {
	if _, err := s.tacticAPI.Update(ctx, id, payload); err != nil {
		s.fail("Could not update tactic", err)
		return err
	}
	s.success("Tactic updated")
	return s.FetchTactics(ctx)
}

// DeleteTactic submits the deletion and refetches.
func (s *Store) DeleteTactic(ctx context.Context, id string) error {
	if err := s.tacticAPI.Delete(ctx, id); err != nil {
		s.fail("Could not delete tactic", err)
		return err
	}
	s.success("Tactic deleted")
	return s.FetchTactics(ctx)
}

// CreateStatLine submits the new stat line and refetches.
func (s *Store) CreateStatLine(ctx context.Context, payload apiclient.StatLinePayload) error {
	if _, err := s.statisticAPI.Create(ctx, payload); err != nil {
		s.fail("Could not record statistics", err)
		return err
	}
	s.success("Statistics recorded")
	return s.FetchStatistics(ctx)
}

// UpdateStatLine submits the change and refetches.
func (s *Store) UpdateStatLine(ctx context.Context, id string, payload apiclient.StatLinePayload) error {
	if _, err := s.statisticAPI.Update(ctx, id, payload); err != nil {
		s.fail("Could not update statistics", err)
		return err
	}
	s.success("Statistics updated")
	return s.FetchStatistics(ctx)
}

// DeleteStatLine submits the deletion and refetches.
func (s *Store) DeleteStatLine(ctx context.Context, id string) error {
	if err := s.statisticAPI.Delete(ctx, id); err != nil {
		s.fail("Could not delete statistics", err)
		return err
	}
	s.success("Statistics deleted")
	return s.FetchStatistics(ctx)
}

// TeamPerformance fetches aggregated results straight through; the figures
// are not cached because they are cheap to recompute server-side.
func (s *Store) TeamPerformance(ctx context.Context, teamID string) (*apiclient.TeamPerformance, error) {
	return s.statisticAPI.TeamPerformance(ctx, teamID)
}

func (s *Store) success(message string) {
	if s.toasts != nil {
		s.toasts.Notify(message, SeveritySuccess, 0)
	}
}

func (s *Store) fail(message string, err error) {
	s.logger.Warn(message, zap.Error(err))
	if s.toasts != nil {
		s.toasts.Notify(message, SeverityError, 0)
	}
}
