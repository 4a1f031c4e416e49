package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsmgr/club-service/internal/domain"
)

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constructs repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

const teamColumns = `id, name, league_id, country, city, division, venue, founded, team_type, sport_type, logo_url, created_at, updated_at`

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, league_id, country, city, division, venue, founded, team_type, sport_type, logo_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		team.Name,
		team.LeagueID,
		team.Country,
		team.City,
		team.Division,
		team.Venue,
		team.Founded,
		team.Type,
		team.SportType,
		team.LogoURL,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	const query = `
        UPDATE teams SET name=$1, league_id=$2, country=$3, city=$4, division=$5, venue=$6,
            founded=$7, team_type=$8, sport_type=$9, logo_url=$10, updated_at=NOW()
        WHERE id=$11`
	return execExpectingRow(ctx, r.pool, query,
		team.Name,
		team.LeagueID,
		team.Country,
		team.City,
		team.Division,
		team.Venue,
		team.Founded,
		team.Type,
		team.SportType,
		team.LogoURL,
		team.ID,
	)
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM teams WHERE id=$1`
	return execExpectingRow(ctx, r.pool, query, id)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.LeagueID,
		&team.Country,
		&team.City,
		&team.Division,
		&team.Venue,
		&team.Founded,
		&team.Type,
		&team.SportType,
		&team.LogoURL,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.LeagueID,
			&team.Country,
			&team.City,
			&team.Division,
			&team.Venue,
			&team.Founded,
			&team.Type,
			&team.SportType,
			&team.LogoURL,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}
