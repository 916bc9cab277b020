package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// Habilitation is an access-right tag attachable to users.
type Habilitation struct {
	Code        string
	Description string
}

type HabilitationRepository interface {
	GetAll(ctx context.Context) ([]Habilitation, error)
	GetByCode(ctx context.Context, code string) (Habilitation, error)
	Exists(ctx context.Context, code string) (bool, error)
	InUse(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, h Habilitation) error
	Update(ctx context.Context, h Habilitation) error
	Delete(ctx context.Context, code string) error
}

type PostgresHabilitationRepository struct {
	db database.DB
}

func NewPostgresHabilitationRepository(db database.DB) *PostgresHabilitationRepository {
	return &PostgresHabilitationRepository{db: db}
}

func (r *PostgresHabilitationRepository) GetAll(ctx context.Context) ([]Habilitation, error) {
	rows, err := r.db.Query(ctx, `SELECT code, description FROM habilitations ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Habilitation, 0)
	for rows.Next() {
		var h Habilitation
		if err := rows.Scan(&h.Code, &h.Description); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHabilitationRepository) GetByCode(ctx context.Context, code string) (Habilitation, error) {
	row := r.db.QueryRow(ctx, `SELECT code, description FROM habilitations WHERE code = $1`, code)

	var h Habilitation
	if err := row.Scan(&h.Code, &h.Description); err != nil {
		if isNoRows(err) {
			return Habilitation{}, ErrNotFound
		}
		return Habilitation{}, err
	}
	return h, nil
}

func (r *PostgresHabilitationRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM habilitations WHERE code = $1)`, code)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresHabilitationRepository) InUse(ctx context.Context, code string) (bool, error) {
	var inUse bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_habilitations WHERE habilitation_code = $1)`, code)
	if err := row.Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *PostgresHabilitationRepository) Create(ctx context.Context, h Habilitation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO habilitations (code, description) VALUES ($1, $2)`,
		h.Code, h.Description,
	)
	return mapPgError(err)
}

func (r *PostgresHabilitationRepository) Update(ctx context.Context, h Habilitation) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE habilitations SET description = $1 WHERE code = $2`,
		h.Description, h.Code,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresHabilitationRepository) Delete(ctx context.Context, code string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM habilitations WHERE code = $1`, code)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
