package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsmgr/club-service/internal/domain"
)

// StatLineRepository manages persistence for per-match player statistics.
type StatLineRepository interface {
	Create(ctx context.Context, line *domain.StatLine) error
	Update(ctx context.Context, line *domain.StatLine) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.StatLine, error)
	List(ctx context.Context) ([]domain.StatLine, error)
	ListByPlayer(ctx context.Context, playerID string) ([]domain.StatLine, error)
	ListByMatch(ctx context.Context, matchID string) ([]domain.StatLine, error)
}

type statLineRepository struct {
	pool *pgxpool.Pool
}

// NewStatLineRepository constructs repository.
func NewStatLineRepository(pool *pgxpool.Pool) StatLineRepository {
	return &statLineRepository{pool: pool}
}

const statLineColumns = `id, player_id, match_id, minutes_played, goals, assists, shots, passes, pass_accuracy, rating, created_at, updated_at`

func (r *statLineRepository) Create(ctx context.Context, line *domain.StatLine) error {
	const query = `
        INSERT INTO stat_lines (player_id, match_id, minutes_played, goals, assists, shots, passes, pass_accuracy, rating)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		line.PlayerID,
		line.MatchID,
		line.MinutesPlayed,
		line.Goals,
		line.Assists,
		line.Shots,
		line.Passes,
		line.PassAccuracy,
		line.Rating,
	).Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt)
}

func (r *statLineRepository) Update(ctx context.Context, line *domain.StatLine) error {
	const query = `
        UPDATE stat_lines SET minutes_played=$1, goals=$2, assists=$3, shots=$4, passes=$5,
            pass_accuracy=$6, rating=$7, updated_at=NOW()
        WHERE id=$8`
	return execExpectingRow(ctx, r.pool, query,
		line.MinutesPlayed,
		line.Goals,
		line.Assists,
		line.Shots,
		line.Passes,
		line.PassAccuracy,
		line.Rating,
		line.ID,
	)
}

func (r *statLineRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM stat_lines WHERE id=$1`
	return execExpectingRow(ctx, r.pool, query, id)
}

func (r *statLineRepository) GetByID(ctx context.Context, id string) (*domain.StatLine, error) {
	const query = `SELECT ` + statLineColumns + ` FROM stat_lines WHERE id=$1`
	var line domain.StatLine
	if err := scanStatLine(r.pool.QueryRow(ctx, query, id), &line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *statLineRepository) List(ctx context.Context) ([]domain.StatLine, error) {
	const query = `SELECT ` + statLineColumns + ` FROM stat_lines ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *statLineRepository) ListByPlayer(ctx context.Context, playerID string) ([]domain.StatLine, error) {
	const query = `SELECT ` + statLineColumns + ` FROM stat_lines WHERE player_id=$1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, playerID)
}

func (r *statLineRepository) ListByMatch(ctx context.Context, matchID string) ([]domain.StatLine, error) {
	const query = `SELECT ` + statLineColumns + ` FROM stat_lines WHERE match_id=$1`
	return r.queryMany(ctx, query, matchID)
}

func (r *statLineRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.StatLine, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatLine
	for rows.Next() {
		var line domain.StatLine
		if err := scanStatLine(rows, &line); err != nil {
			return nil, err
		}
		result = append(result, line)
	}
	return result, rows.Err()
}

func scanStatLine(row rowScanner, line *domain.StatLine) error {
	return row.Scan(
		&line.ID,
		&line.PlayerID,
		&line.MatchID,
		&line.MinutesPlayed,
		&line.Goals,
		&line.Assists,
		&line.Shots,
		&line.Passes,
		&line.PassAccuracy,
		&line.Rating,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
}
