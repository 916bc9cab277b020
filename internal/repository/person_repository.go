package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

type Person struct {
	ID        string
	LastName  string
	FirstName string
	Role      string
	TeamCode  *string
}

type PersonRepository interface {
	GetAll(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id string) (Person, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindByTeamCode(ctx context.Context, teamCode string) ([]Person, error)
	Create(ctx context.Context, p Person) error
	Update(ctx context.Context, p Person) error
	Delete(ctx context.Context, id string) error
}

type PostgresPersonRepository struct {
	db database.DB
}

func NewPostgresPersonRepository(db database.DB) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db}
}

func (r *PostgresPersonRepository) GetAll(ctx context.Context) ([]Person, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, last_name, first_name, role, team_code FROM people ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPeople(rows)
}

func (r *PostgresPersonRepository) GetByID(ctx context.Context, id string) (Person, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, last_name, first_name, role, team_code FROM people WHERE id = $1`, id)

	var p Person
	if err := row.Scan(&p.ID, &p.LastName, &p.FirstName, &p.Role, &p.TeamCode); err != nil {
		if isNoRows(err) {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}
	return p, nil
}

func (r *PostgresPersonRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM people WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPersonRepository) FindByTeamCode(ctx context.Context, teamCode string) ([]Person, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, last_name, first_name, role, team_code FROM people WHERE team_code = $1 ORDER BY id ASC`,
		teamCode,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPeople(rows)
}

func (r *PostgresPersonRepository) Create(ctx context.Context, p Person) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO people (id, last_name, first_name, role, team_code) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.LastName, p.FirstName, p.Role, p.TeamCode,
	)
	return mapPgError(err)
}

func (r *PostgresPersonRepository) Update(ctx context.Context, p Person) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE people SET last_name = $1, first_name = $2, role = $3, team_code = $4 WHERE id = $5`,
		p.LastName, p.FirstName, p.Role, p.TeamCode, p.ID,
	)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the person; skill-matrix rows and the availability profile
// go with it via ON DELETE CASCADE.
func (r *PostgresPersonRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPeople(rows database.Rows) ([]Person, error) {
	out := make([]Person, 0)
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.LastName, &p.FirstName, &p.Role, &p.TeamCode); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
