package repository

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// SkillEntry associates one person and one competency with a rating.
// (person, competency) is the key; at most one rating per pair.
type SkillEntry struct {
	PersonID        string
	CompetencyLabel string
	RatingValue     int
	RatingLabel     string
}

type SkillMatrixRepository interface {
	Get(ctx context.Context, personID, competencyLabel string) (SkillEntry, error)
	FindByPerson(ctx context.Context, personID string) ([]SkillEntry, error)
	FindByCompetency(ctx context.Context, competencyLabel string) ([]SkillEntry, error)
	FindByPersonIDs(ctx context.Context, personIDs []string) (map[string][]SkillEntry, error)
	Create(ctx context.Context, e SkillEntry) error
	Update(ctx context.Context, e SkillEntry) error
	Delete(ctx context.Context, personID, competencyLabel string) error
}

type PostgresSkillMatrixRepository struct {
	db database.DB
}

func NewPostgresSkillMatrixRepository(db database.DB) *PostgresSkillMatrixRepository {
	return &PostgresSkillMatrixRepository{db: db}
}

const skillEntrySelect = `
	SELECT sm.person_id, sm.competency_label, sm.rating_value, COALESCE(n.label, '')
	FROM skill_matrix sm
	LEFT JOIN ratings n ON n.value = sm.rating_value`

func (r *PostgresSkillMatrixRepository) Get(ctx context.Context, personID, competencyLabel string) (SkillEntry, error) {
	row := r.db.QueryRow(ctx,
		skillEntrySelect+` WHERE sm.person_id = $1 AND sm.competency_label = $2`,
		personID, competencyLabel,
	)

	var e SkillEntry
	if err := row.Scan(&e.PersonID, &e.CompetencyLabel, &e.RatingValue, &e.RatingLabel); err != nil {
		if isNoRows(err) {
			return SkillEntry{}, ErrNotFound
		}
		return SkillEntry{}, err
	}
	return e, nil
}

func (r *PostgresSkillMatrixRepository) FindByPerson(ctx context.Context, personID string) ([]SkillEntry, error) {
	rows, err := r.db.Query(ctx,
		skillEntrySelect+` WHERE sm.person_id = $1 ORDER BY sm.competency_label ASC`,
		personID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkillEntries(rows)
}

func (r *PostgresSkillMatrixRepository) FindByCompetency(ctx context.Context, competencyLabel string) ([]SkillEntry, error) {
	rows, err := r.db.Query(ctx,
		skillEntrySelect+` WHERE sm.competency_label = $1 ORDER BY sm.person_id ASC`,
		competencyLabel,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSkillEntries(rows)
}

func (r *PostgresSkillMatrixRepository) FindByPersonIDs(ctx context.Context, personIDs []string) (map[string][]SkillEntry, error) {
	out := make(map[string][]SkillEntry, len(personIDs))
	if len(personIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		skillEntrySelect+` WHERE sm.person_id = ANY($1) ORDER BY sm.person_id, sm.competency_label ASC`,
		personIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e SkillEntry
		if err := rows.Scan(&e.PersonID, &e.CompetencyLabel, &e.RatingValue, &e.RatingLabel); err != nil {
			return nil, err
		}
		out[e.PersonID] = append(out[e.PersonID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillMatrixRepository) Create(ctx context.Context, e SkillEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_matrix (person_id, competency_label, rating_value) VALUES ($1, $2, $3)`,
		e.PersonID, e.CompetencyLabel, e.RatingValue,
	)
	return mapPgError(err)
}

func (r *PostgresSkillMatrixRepository) Update(ctx context.Context, e SkillEntry) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skill_matrix SET rating_value = $1 WHERE person_id = $2 AND competency_label = $3`,
		e.RatingValue, e.PersonID, e.CompetencyLabel,
	)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresSkillMatrixRepository) Delete(ctx context.Context, personID, competencyLabel string) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM skill_matrix WHERE person_id = $1 AND competency_label = $2`,
		personID, competencyLabel,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSkillEntries(rows database.Rows) ([]SkillEntry, error) {
	out := make([]SkillEntry, 0)
	for rows.Next() {
		var e SkillEntry
		if err := rows.Scan(&e.PersonID, &e.CompetencyLabel, &e.RatingValue, &e.RatingLabel); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
