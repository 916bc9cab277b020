package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// Rating is an ordinal skill level. Value is the key; ordering is by Value.
type Rating struct {
	Value int
	Label string
}

type RatingRepository interface {
	GetAll(ctx context.Context) ([]Rating, error)
	GetByValue(ctx context.Context, value int) (Rating, error)
	Exists(ctx context.Context, value int) (bool, error)
	InUse(ctx context.Context, value int) (bool, error)
	Create(ctx context.Context, n Rating) error
	Update(ctx context.Context, n Rating) error
	Delete(ctx context.Context, value int) error
}

type PostgresRatingRepository struct {
	db database.DB
}

func NewPostgresRatingRepository(db database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) GetAll(ctx context.Context) ([]Rating, error) {
	rows, err := r.db.Query(ctx, `SELECT value, label FROM ratings ORDER BY value ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Rating, 0)
	for rows.Next() {
		var n Rating
		if err := rows.Scan(&n.Value, &n.Label); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRatingRepository) GetByValue(ctx context.Context, value int) (Rating, error) {
	row := r.db.QueryRow(ctx, `SELECT value, label FROM ratings WHERE value = $1`, value)

	var n Rating
	if err := row.Scan(&n.Value, &n.Label); err != nil {
		if isNoRows(err) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return n, nil
}

func (r *PostgresRatingRepository) Exists(ctx context.Context, value int) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ratings WHERE value = $1)`, value)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRatingRepository) InUse(ctx context.Context, value int) (bool, error) {
	var inUse bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM skill_matrix WHERE rating_value = $1)
		     OR EXISTS(SELECT 1 FROM request_requirements WHERE min_rating = $1)`,
		value,
	)
	if err := row.Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *PostgresRatingRepository) Create(ctx context.Context, n Rating) error {
	_, err := r.db.Exec(ctx, `INSERT INTO ratings (value, label) VALUES ($1, $2)`, n.Value, n.Label)
	return mapPgError(err)
}

func (r *PostgresRatingRepository) Update(ctx context.Context, n Rating) error {
	affected, err := r.db.Exec(ctx, `UPDATE ratings SET label = $1 WHERE value = $2`, n.Label, n.Value)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRatingRepository) Delete(ctx context.Context, value int) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE value = $1`, value)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
