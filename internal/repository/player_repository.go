package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsmgr/club-service/internal/domain"
)

// PlayerRepository manages persistence for players.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.Player, error)
	AssignTeam(ctx context.Context, playerIDs []string, teamID string) error
}

type playerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository constructs repository.
func NewPlayerRepository(pool *pgxpool.Pool) PlayerRepository {
	return &playerRepository{pool: pool}
}

const playerColumns = `id, first_name, last_name, date_of_birth, nationality, position, jersey_number, height_cm, weight_kg, profile_image, team_id, created_at, updated_at`

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	const query = `
        INSERT INTO players (first_name, last_name, date_of_birth, nationality, position, jersey_number, height_cm, weight_kg, profile_image, team_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		player.FirstName,
		player.LastName,
		player.DateOfBirth,
		player.Nationality,
		player.Position,
		player.JerseyNumber,
		player.HeightCm,
		player.WeightKg,
		player.ProfileImage,
		player.TeamID,
	).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
}

func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	const query = `
        UPDATE players SET first_name=$1, last_name=$2, date_of_birth=$3, nationality=$4, position=$5,
            jersey_number=$6, height_cm=$7, weight_kg=$8, profile_image=$9, team_id=$10, updated_at=NOW()
        WHERE id=$11`
	return execExpectingRow(ctx, r.pool, query,
		player.FirstName,
		player.LastName,
		player.DateOfBirth,
		player.Nationality,
		player.Position,
		player.JerseyNumber,
		player.HeightCm,
		player.WeightKg,
		player.ProfileImage,
		player.TeamID,
		player.ID,
	)
}

func (r *playerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM players WHERE id=$1`
	return execExpectingRow(ctx, r.pool, query, id)
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE id=$1`
	var player domain.Player
	if err := scanPlayer(r.pool.QueryRow(ctx, query, id), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) List(ctx context.Context) ([]domain.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players ORDER BY last_name, first_name`
	return r.queryMany(ctx, query)
}

func (r *playerRepository) ListByTeam(ctx context.Context, teamID string) ([]domain.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE team_id=$1 ORDER BY jersey_number`
	return r.queryMany(ctx, query, teamID)
}

func (r *playerRepository) AssignTeam(ctx context.Context, playerIDs []string, teamID string) error {
	const query = `UPDATE players SET team_id=$1, updated_at=NOW() WHERE id = ANY($2)`
	_, err := r.pool.Exec(ctx, query, teamID, playerIDs)
	return err
}

func (r *playerRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Player
	for rows.Next() {
		var player domain.Player
		if err := scanPlayer(rows, &player); err != nil {
			return nil, err
		}
		result = append(result, player)
	}
	return result, rows.Err()
}

func scanPlayer(row rowScanner, player *domain.Player) error {
	return row.Scan(
		&player.ID,
		&player.FirstName,
		&player.LastName,
		&player.DateOfBirth,
		&player.Nationality,
		&player.Position,
		&player.JerseyNumber,
		&player.HeightCm,
		&player.WeightKg,
		&player.ProfileImage,
		&player.TeamID,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
}
