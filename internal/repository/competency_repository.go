package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

type Competency struct {
	Label       string
	Description string
}

type CompetencyRepository interface {
	GetAll(ctx context.Context) ([]Competency, error)
	GetByLabel(ctx context.Context, label string) (Competency, error)
	Exists(ctx context.Context, label string) (bool, error)
	InUse(ctx context.Context, label string) (bool, error)
	Create(ctx context.Context, c Competency) error
	Update(ctx context.Context, c Competency) error
	Delete(ctx context.Context, label string) error
}

type PostgresCompetencyRepository struct {
	db database.DB
}

func NewPostgresCompetencyRepository(db database.DB) *PostgresCompetencyRepository {
	return &PostgresCompetencyRepository{db: db}
}

func (r *PostgresCompetencyRepository) GetAll(ctx context.Context) ([]Competency, error) {
	rows, err := r.db.Query(ctx, `SELECT label, description FROM competencies ORDER BY label ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Competency, 0)
	for rows.Next() {
		var c Competency
		if err := rows.Scan(&c.Label, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompetencyRepository) GetByLabel(ctx context.Context, label string) (Competency, error) {
	row := r.db.QueryRow(ctx, `SELECT label, description FROM competencies WHERE label = $1`, label)

	var c Competency
	if err := row.Scan(&c.Label, &c.Description); err != nil {
		if isNoRows(err) {
			return Competency{}, ErrNotFound
		}
		return Competency{}, err
	}
	return c, nil
}

func (r *PostgresCompetencyRepository) Exists(ctx context.Context, label string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM competencies WHERE label = $1)`, label)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCompetencyRepository) InUse(ctx context.Context, label string) (bool, error) {
	var inUse bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM skill_matrix WHERE competency_label = $1)
		     OR EXISTS(SELECT 1 FROM request_requirements WHERE competency_label = $1)`,
		label,
	)
	if err := row.Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *PostgresCompetencyRepository) Create(ctx context.Context, c Competency) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO competencies (label, description) VALUES ($1, $2)`,
		c.Label, c.Description,
	)
	return mapPgError(err)
}

func (r *PostgresCompetencyRepository) Update(ctx context.Context, c Competency) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE competencies SET description = $1 WHERE label = $2`,
		c.Description, c.Label,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCompetencyRepository) Delete(ctx context.Context, label string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM competencies WHERE label = $1`, label)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
