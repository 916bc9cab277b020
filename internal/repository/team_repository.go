package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// Team membership is never stored here; it is computed from people.team_code
// on read by the person repository.
type Team struct {
	Code        string
	Name        string
	Description string
	GroupCode   *string
}

type TeamRepository interface {
	GetAll(ctx context.Context) ([]Team, error)
	GetByCode(ctx context.Context, code string) (Team, error)
	Exists(ctx context.Context, code string) (bool, error)
	InUse(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, code string) error
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) GetAll(ctx context.Context) ([]Team, error) {
	rows, err := r.db.Query(ctx,
		`SELECT code, name, description, group_code FROM teams ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Team, 0)
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.Code, &t.Name, &t.Description, &t.GroupCode); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) GetByCode(ctx context.Context, code string) (Team, error) {
	row := r.db.QueryRow(ctx,
		`SELECT code, name, description, group_code FROM teams WHERE code = $1`, code)

	var t Team
	if err := row.Scan(&t.Code, &t.Name, &t.Description, &t.GroupCode); err != nil {
		if isNoRows(err) {
			return Team{}, ErrNotFound
		}
		return Team{}, err
	}
	return t, nil
}

func (r *PostgresTeamRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE code = $1)`, code)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresTeamRepository) InUse(ctx context.Context, code string) (bool, error) {
	var inUse bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM people WHERE team_code = $1)
		     OR EXISTS(SELECT 1 FROM staffing_requests WHERE destination_type = 'EQUIPE' AND destination_code = $1)`,
		code,
	)
	if err := row.Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *PostgresTeamRepository) Create(ctx context.Context, t Team) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO teams (code, name, description, group_code) VALUES ($1, $2, $3, $4)`,
		t.Code, t.Name, t.Description, t.GroupCode,
	)
	return mapPgError(err)
}

func (r *PostgresTeamRepository) Update(ctx context.Context, t Team) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE teams SET name = $1, description = $2, group_code = $3 WHERE code = $4`,
		t.Name, t.Description, t.GroupCode, t.Code,
	)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTeamRepository) Delete(ctx context.Context, code string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM teams WHERE code = $1`, code)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
