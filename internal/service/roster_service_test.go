package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/internal/events"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

type fakePlayerRepo struct {
	players map[string]*domain.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]*domain.Player)}
}

func (r *fakePlayerRepo) Create(_ context.Context, player *domain.Player) error {
	r.nextID++
	player.ID = fmt.Sprintf("player-%d", r.nextID)
	clone := *player
	r.players[player.ID] = &clone
	return nil
}

func (r *fakePlayerRepo) Update(_ context.Context, player *domain.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *player
	r.players[player.ID] = &clone
	return nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.players[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id string) (*domain.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return player, nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]domain.Player, error) {
	out := make([]domain.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlayerRepo) ListByTeam(_ context.Context, teamID string) ([]domain.Player, error) {
	var out []domain.Player
	for _, p := range r.players {
		if p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) AssignTeam(_ context.Context, playerIDs []string, teamID string) error {
	for _, id := range playerIDs {
		player, ok := r.players[id]
		if !ok {
			return pgx.ErrNoRows
		}
		assigned := teamID
		player.TeamID = &assigned
	}
	return nil
}

type fakeTeamRepo struct {
	teams map[string]*domain.Team
}

func newFakeTeamRepo(teams ...*domain.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[string]*domain.Team)}
	for _, team := range teams {
		repo.teams[team.ID] = team
	}
	return repo
}

func (r *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	if team.ID == "" {
		team.ID = fmt.Sprintf("team-%d", len(r.teams)+1)
	}
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *domain.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.teams[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return team, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *t)
	}
	return out, nil
}

func newRoster(players *fakePlayerRepo, teams *fakeTeamRepo) *RosterService {
	return NewRosterService(teams, players, events.NewInMemoryDispatcher(), zap.NewNop())
}

func teamID(id string) *string { return &id }

func TestCreatePlayerValidation(t *testing.T) {
	roster := newRoster(newFakePlayerRepo(), newFakeTeamRepo())

	cases := []struct {
		name   string
		player domain.Player
	}{
		{"missing name", domain.Player{JerseyNumber: 10}},
		{"jersey too low", domain.Player{FirstName: "A", LastName: "B", JerseyNumber: 0}},
		{"jersey too high", domain.Player{FirstName: "A", LastName: "B", JerseyNumber: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			player := tc.player
			err := roster.CreatePlayer(context.Background(), &player)
			require.Error(t, err)

			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, apperrors.CodeValidation, domainErr.Code)
		})
	}
}

func TestCreatePlayerRejectsDuplicateJersey(t *testing.T) {
	players := newFakePlayerRepo()
	roster := newRoster(players, newFakeTeamRepo())

	first := domain.Player{FirstName: "Alex", LastName: "Kim", JerseyNumber: 10, TeamID: teamID("team-1")}
	require.NoError(t, roster.CreatePlayer(context.Background(), &first))

	dup := domain.Player{FirstName: "Brook", LastName: "Lee", JerseyNumber: 10, TeamID: teamID("team-1")}
	err := roster.CreatePlayer(context.Background(), &dup)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, apperrors.CodeConflict, domainErr.Code)
}

func TestCreatePlayerAllowsSameJerseyAcrossTeams(t *testing.T) {
	players := newFakePlayerRepo()
	roster := newRoster(players, newFakeTeamRepo())

	first := domain.Player{FirstName: "Alex", LastName: "Kim", JerseyNumber: 10, TeamID: teamID("team-1")}
	require.NoError(t, roster.CreatePlayer(context.Background(), &first))

	other := domain.Player{FirstName: "Brook", LastName: "Lee", JerseyNumber: 10, TeamID: teamID("team-2")}
	assert.NoError(t, roster.CreatePlayer(context.Background(), &other))

	free := domain.Player{FirstName: "Casey", LastName: "Im", JerseyNumber: 10}
	assert.NoError(t, roster.CreatePlayer(context.Background(), &free), "free agents never collide")
}

func TestUpdatePlayerKeepsOwnJerseyNumber(t *testing.T) {
	players := newFakePlayerRepo()
	roster := newRoster(players, newFakeTeamRepo())

	player := domain.Player{FirstName: "Alex", LastName: "Kim", JerseyNumber: 10, TeamID: teamID("team-1")}
	require.NoError(t, roster.CreatePlayer(context.Background(), &player))

	player.Position = "midfielder"
	assert.NoError(t, roster.UpdatePlayer(context.Background(), &player))
}

func TestUpdateTeamPlayersReassigns(t *testing.T) {
	players := newFakePlayerRepo()
	teams := newFakeTeamRepo(&domain.Team{ID: "team-2", Name: "Reserves"})
	roster := newRoster(players, teams)

	player := domain.Player{FirstName: "Alex", LastName: "Kim", JerseyNumber: 10, TeamID: teamID("team-1")}
	require.NoError(t, roster.CreatePlayer(context.Background(), &player))

	require.NoError(t, roster.UpdateTeamPlayers(context.Background(), "team-2", []string{player.ID}))

	moved, err := roster.GetPlayer(context.Background(), player.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.TeamID)
	assert.Equal(t, "team-2", *moved.TeamID)
}

func TestUpdateTeamPlayersUnknownTeam(t *testing.T) {
	roster := newRoster(newFakePlayerRepo(), newFakeTeamRepo())
	err := roster.UpdateTeamPlayers(context.Background(), "nope", []string{"player-1"})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCreateTeamDefaults(t *testing.T) {
	teams := newFakeTeamRepo()
	roster := newRoster(newFakePlayerRepo(), teams)

	team := domain.Team{Name: "First XI"}
	require.NoError(t, roster.CreateTeam(context.Background(), &team))
	assert.Equal(t, domain.TeamTypeClub, team.Type)
	assert.Equal(t, domain.SportFootball, team.SportType)

	err := roster.CreateTeam(context.Background(), &domain.Team{})
	assert.Error(t, err, "a team needs a name")
}
