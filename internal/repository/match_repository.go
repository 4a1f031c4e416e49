package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsmgr/club-service/internal/domain"
)

// MatchRepository manages persistence for matches.
type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	Update(ctx context.Context, match *domain.Match) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	List(ctx context.Context) ([]domain.Match, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.Match, error)
}

type matchRepository struct {
	pool *pgxpool.Pool
}

// NewMatchRepository constructs repository.
func NewMatchRepository(pool *pgxpool.Pool) MatchRepository {
	return &matchRepository{pool: pool}
}

const matchColumns = `id, name, home_team_id, away_team_id, home_score, away_score, venue, kickoff_at, status, match_type, sport_type, attendance, created_at, updated_at`

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	const query = `
        INSERT INTO matches (name, home_team_id, away_team_id, home_score, away_score, venue, kickoff_at, status, match_type, sport_type, attendance)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		match.Name,
		match.HomeTeamID,
		match.AwayTeamID,
		match.HomeScore,
		match.AwayScore,
		match.Venue,
		match.KickoffAt,
		match.Status,
		match.Type,
		match.SportType,
		match.Attendance,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
}

func (r *matchRepository) Update(ctx context.Context, match *domain.Match) error {
	const query = `
        UPDATE matches SET name=$1, home_team_id=$2, away_team_id=$3, home_score=$4, away_score=$5,
            venue=$6, kickoff_at=$7, status=$8, match_type=$9, sport_type=$10, attendance=$11, updated_at=NOW()
        WHERE id=$12`
	return execExpectingRow(ctx, r.pool, query,
		match.Name,
		match.HomeTeamID,
		match.AwayTeamID,
		match.HomeScore,
		match.AwayScore,
		match.Venue,
		match.KickoffAt,
		match.Status,
		match.Type,
		match.SportType,
		match.Attendance,
		match.ID,
	)
}

func (r *matchRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM matches WHERE id=$1`
	return execExpectingRow(ctx, r.pool, query, id)
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches WHERE id=$1`
	var match domain.Match
	if err := scanMatch(r.pool.QueryRow(ctx, query, id), &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) List(ctx context.Context) ([]domain.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches ORDER BY kickoff_at DESC`
	return r.queryMany(ctx, query)
}

func (r *matchRepository) ListByTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches WHERE home_team_id=$1 OR away_team_id=$1 ORDER BY kickoff_at DESC`
	return r.queryMany(ctx, query, teamID)
}

func (r *matchRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Match, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Match
	for rows.Next() {
		var match domain.Match
		if err := scanMatch(rows, &match); err != nil {
			return nil, err
		}
		result = append(result, match)
	}
	return result, rows.Err()
}

func scanMatch(row rowScanner, match *domain.Match) error {
	return row.Scan(
		&match.ID,
		&match.Name,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.HomeScore,
		&match.AwayScore,
		&match.Venue,
		&match.KickoffAt,
		&match.Status,
		&match.Type,
		&match.SportType,
		&match.Attendance,
		&match.CreatedAt,
		&match.UpdatedAt,
	)
}
