package repository

import (
	"context"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// AvailabilityProfile marks a person as on the market within an optional
// window. Nil bounds are open-ended.
type AvailabilityProfile struct {
	PersonID    string
	Manager     string
	WindowStart *time.Time
	WindowEnd   *time.Time
}

type ProfileRepository interface {
	GetAll(ctx context.Context) ([]AvailabilityProfile, error)
	GetByPersonID(ctx context.Context, personID string) (AvailabilityProfile, error)
	Create(ctx context.Context, p AvailabilityProfile) error
	Update(ctx context.Context, p AvailabilityProfile) error
	Delete(ctx context.Context, personID string) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetAll(ctx context.Context) ([]AvailabilityProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT person_id, manager, window_start, window_end FROM availability_profiles ORDER BY person_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AvailabilityProfile, 0)
	for rows.Next() {
		var p AvailabilityProfile
		if err := rows.Scan(&p.PersonID, &p.Manager, &p.WindowStart, &p.WindowEnd); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) GetByPersonID(ctx context.Context, personID string) (AvailabilityProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT person_id, manager, window_start, window_end FROM availability_profiles WHERE person_id = $1`,
		personID,
	)

	var p AvailabilityProfile
	if err := row.Scan(&p.PersonID, &p.Manager, &p.WindowStart, &p.WindowEnd); err != nil {
		if isNoRows(err) {
			return AvailabilityProfile{}, ErrNotFound
		}
		return AvailabilityProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p AvailabilityProfile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO availability_profiles (person_id, manager, window_start, window_end) VALUES ($1, $2, $3, $4)`,
		p.PersonID, p.Manager, p.WindowStart, p.WindowEnd,
	)
	return mapPgError(err)
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p AvailabilityProfile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE availability_profiles SET manager = $1, window_start = $2, window_end = $3 WHERE person_id = $4`,
		p.Manager, p.WindowStart, p.WindowEnd, p.PersonID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) Delete(ctx context.Context, personID string) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM availability_profiles WHERE person_id = $1`, personID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
