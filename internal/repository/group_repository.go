package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

type Group struct {
	Code      string
	Label     string
	Direction string
}

type GroupRepository interface {
	GetAll(ctx context.Context) ([]Group, error)
	GetByCode(ctx context.Context, code string) (Group, error)
	Exists(ctx context.Context, code string) (bool, error)
	InUse(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, g Group) error
	Update(ctx context.Context, g Group) error
	Delete(ctx context.Context, code string) error
}

type PostgresGroupRepository struct {
	db database.DB
}

func NewPostgresGroupRepository(db database.DB) *PostgresGroupRepository {
	return &PostgresGroupRepository{db: db}
}

func (r *PostgresGroupRepository) GetAll(ctx context.Context) ([]Group, error) {
	rows, err := r.db.Query(ctx, `SELECT code, label, direction FROM org_groups ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Group, 0)
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.Code, &g.Label, &g.Direction); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGroupRepository) GetByCode(ctx context.Context, code string) (Group, error) {
	row := r.db.QueryRow(ctx, `SELECT code, label, direction FROM org_groups WHERE code = $1`, code)

	var g Group
	if err := row.Scan(&g.Code, &g.Label, &g.Direction); err != nil {
		if isNoRows(err) {
			return Group{}, ErrNotFound
		}
		return Group{}, err
	}
	return g, nil
}

func (r *PostgresGroupRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM org_groups WHERE code = $1)`, code)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresGroupRepository) InUse(ctx context.Context, code string) (bool, error) {
	var inUse bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE group_code = $1)
		     OR EXISTS(SELECT 1 FROM staffing_requests WHERE destination_type = 'GROUPEMENT' AND destination_code = $1)`,
		code,
	)
	if err := row.Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *PostgresGroupRepository) Create(ctx context.Context, g Group) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO org_groups (code, label, direction) VALUES ($1, $2, $3)`,
		g.Code, g.Label, g.Direction,
	)
	return mapPgError(err)
}

func (r *PostgresGroupRepository) Update(ctx context.Context, g Group) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE org_groups SET label = $1, direction = $2 WHERE code = $3`,
		g.Label, g.Direction, g.Code,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresGroupRepository) Delete(ctx context.Context, code string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM org_groups WHERE code = $1`, code)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
