package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsmgr/club-service/internal/domain"
)

// TacticRepository manages persistence for tactical strategies.
type TacticRepository interface {
	Create(ctx context.Context, tactic *domain.Tactic) error
	Update(ctx context.Context, tactic *domain.Tactic) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Tactic, error)
	List(ctx context.Context) ([]domain.Tactic, error)
}

type tacticRepository struct {
	pool *pgxpool.Pool
}

// NewTacticRepository constructs repository.
func NewTacticRepository(pool *pgxpool.Pool) TacticRepository {
	return &tacticRepository{pool: pool}
}

const tacticColumns = `id, name, description, formation, team_id, created_by, created_at, updated_at`

func (r *tacticRepository) Create(ctx context.Context, tactic *domain.Tactic) error {
	const query = `
        INSERT INTO tactics (name, description, formation, team_id, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		tactic.Name,
		tactic.Description,
		tactic.Formation,
		tactic.TeamID,
		tactic.CreatedBy,
	).Scan(&tactic.ID, &tactic.CreatedAt, &tactic.UpdatedAt)
}

func (r *tacticRepository) Update(ctx context.Context, tactic *domain.Tactic) error {
	const query = `
        UPDATE tactics SET name=$1, description=$2, formation=$3, team_id=$4, updated_at=NOW()
        WHERE id=$5`
	return execExpectingRow(ctx, r.pool, query,
		tactic.Name,
		tactic.Description,
		tactic.Formation,
		tactic.TeamID,
		tactic.ID,
	)
}

func (r *tacticRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tactics WHERE id=$1`
	return execExpectingRow(ctx, r.pool, query, id)
}

func (r *tacticRepository) GetByID(ctx context.Context, id string) (*domain.Tactic, error) {
	const query = `SELECT ` + tacticColumns + ` FROM tactics WHERE id=$1`
	var tactic domain.Tactic
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tactic.ID,
		&tactic.Name,
		&tactic.Description,
		&tactic.Formation,
		&tactic.TeamID,
		&tactic.CreatedBy,
		&tactic.CreatedAt,
		&tactic.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tactic, nil
}

func (r *tacticRepository) List(ctx context.Context) ([]domain.Tactic, error) {
	const query = `SELECT ` + tacticColumns + ` FROM tactics ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Tactic
	for rows.Next() {
		var tactic domain.Tactic
		if err := rows.Scan(
			&tactic.ID,
			&tactic.Name,
			&tactic.Description,
			&tactic.Formation,
			&tactic.TeamID,
			&tactic.CreatedBy,
			&tactic.CreatedAt,
			&tactic.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, tactic)
	}
	return result, rows.Err()
}
