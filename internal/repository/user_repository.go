package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// User is an access-control record, independent of Person.
type User struct {
	Matricule     string
	PasswordHash  string
	Habilitations []string
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByMatricule(ctx context.Context, matricule string) (User, error)
	Exists(ctx context.Context, matricule string) (bool, error)
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, matricule string) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT matricule, password_hash FROM users ORDER BY matricule ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Matricule, &u.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range out {
		habs, err := r.findHabilitations(ctx, out[i].Matricule)
		if err != nil {
			return nil, err
		}
		out[i].Habilitations = habs
	}
	return out, nil
}

func (r *PostgresUserRepository) GetByMatricule(ctx context.Context, matricule string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT matricule, password_hash FROM users WHERE matricule = $1`, matricule)

	var u User
	if err := row.Scan(&u.Matricule, &u.PasswordHash); err != nil {
		if isNoRows(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	habs, err := r.findHabilitations(ctx, matricule)
	if err != nil {
		return User{}, err
	}
	u.Habilitations = habs
	return u, nil
}

func (r *PostgresUserRepository) Exists(ctx context.Context, matricule string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE matricule = $1)`, matricule)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO users (matricule, password_hash) VALUES ($1, $2)`,
		u.Matricule, u.PasswordHash,
	)
	if err != nil {
		return mapPgError(err)
	}

	if err := insertHabilitations(ctx, tx, u.Matricule, u.Habilitations); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update replaces the habilitation set whole; the password hash is only
// touched when non-empty.
func (r *PostgresUserRepository) Update(ctx context.Context, u User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var affected int64
	if u.PasswordHash != "" {
		affected, err = tx.Exec(ctx,
			`UPDATE users SET password_hash = $1 WHERE matricule = $2`,
			u.PasswordHash, u.Matricule,
		)
	} else {
		affected, err = tx.Exec(ctx,
			`UPDATE users SET matricule = matricule WHERE matricule = $1`,
			u.Matricule,
		)
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_habilitations WHERE matricule = $1`, u.Matricule); err != nil {
		return err
	}
	if err := insertHabilitations(ctx, tx, u.Matricule, u.Habilitations); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresUserRepository) Delete(ctx context.Context, matricule string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM users WHERE matricule = $1`, matricule)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) findHabilitations(ctx context.Context, matricule string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT habilitation_code FROM user_habilitations WHERE matricule = $1 ORDER BY habilitation_code ASC`,
		matricule,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertHabilitations(ctx context.Context, tx database.Tx, matricule string, codes []string) error {
	for _, code := range codes {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_habilitations (matricule, habilitation_code) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			matricule, code,
		)
		if err != nil {
			return mapPgError(err)
		}
	}
	return nil
}
