package repository

import (
	"context"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"

	"github.com/google/uuid"
)

type StaffingRequestRepository interface {
	GetAll(ctx context.Context) ([]request.StaffingRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (request.StaffingRequest, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByRequester(ctx context.Context, requester string) ([]request.StaffingRequest, error)
	FindByCompetency(ctx context.Context, competencyLabel string) ([]request.StaffingRequest, error)
	FindActiveAt(ctx context.Context, date time.Time) ([]request.StaffingRequest, error)
	Create(ctx context.Context, r request.StaffingRequest) error
	Update(ctx context.Context, r request.StaffingRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresStaffingRequestRepository struct {
	db database.DB
}

func NewPostgresStaffingRequestRepository(db database.DB) *PostgresStaffingRequestRepository {
	return &PostgresStaffingRequestRepository{db: db}
}

// The destination name is stored denormalized but re-resolved against the
// live team or group on every read, so renames are always reflected.
const requestSelect = `
	SELECT sr.id, sr.requester, sr.description, sr.nature, sr.start_date, sr.end_date,
	       sr.destination_type, sr.destination_code,
	       COALESCE(t.name, g.label, sr.destination_name)
	FROM staffing_requests sr
	LEFT JOIN teams t ON sr.destination_type = 'EQUIPE' AND t.code = sr.destination_code
	LEFT JOIN org_groups g ON sr.destination_type = 'GROUPEMENT' AND g.code = sr.destination_code`

func (r *PostgresStaffingRequestRepository) GetAll(ctx context.Context) ([]request.StaffingRequest, error) {
	return r.queryRequests(ctx, requestSelect+` ORDER BY sr.start_date, sr.id`)
}

func (r *PostgresStaffingRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (request.StaffingRequest, error) {
	out, err := r.queryRequests(ctx, requestSelect+` WHERE sr.id = $1`, id)
	if err != nil {
		return request.StaffingRequest{}, err
	}
	if len(out) == 0 {
		return request.StaffingRequest{}, ErrNotFound
	}
	return out[0], nil
}

func (r *PostgresStaffingRequestRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM staffing_requests WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresStaffingRequestRepository) FindByRequester(ctx context.Context, requester string) ([]request.StaffingRequest, error) {
	return r.queryRequests(ctx,
		requestSelect+` WHERE sr.requester = $1 ORDER BY sr.start_date, sr.id`, requester)
}

func (r *PostgresStaffingRequestRepository) FindByCompetency(ctx context.Context, competencyLabel string) ([]request.StaffingRequest, error) {
	return r.queryRequests(ctx,
		requestSelect+` WHERE EXISTS(
			SELECT 1 FROM request_requirements rr
			WHERE rr.request_id = sr.id AND rr.competency_label = $1
		) ORDER BY sr.start_date, sr.id`,
		competencyLabel,
	)
}

// FindActiveAt returns requests whose window covers date, bounds inclusive.
func (r *PostgresStaffingRequestRepository) FindActiveAt(ctx context.Context, date time.Time) ([]request.StaffingRequest, error) {
	return r.queryRequests(ctx,
		requestSelect+` WHERE sr.start_date <= $1 AND (sr.end_date IS NULL OR sr.end_date >= $1)
		ORDER BY sr.start_date, sr.id`,
		date,
	)
}

// Create persists the request and its requirement rows in one transaction.
func (r *PostgresStaffingRequestRepository) Create(ctx context.Context, req request.StaffingRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO staffing_requests
		 (id, requester, description, nature, start_date, end_date, destination_type, destination_code, destination_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID, req.Requester, req.Description, string(req.Nature), req.StartDate, req.EndDate,
		string(req.Destination.Type), req.Destination.Code, req.Destination.Name,
	)
	if err != nil {
		return mapPgError(err)
	}

	if err := insertRequirements(ctx, tx, req.ID, req.Requirements); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update replaces the whole requirement list (clear-then-rebuild), never a
// partial diff, inside one transaction.
func (r *PostgresStaffingRequestRepository) Update(ctx context.Context, req request.StaffingRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE staffing_requests
		 SET requester = $1, description = $2, nature = $3, start_date = $4, end_date = $5,
		     destination_type = $6, destination_code = $7, destination_name = $8
		 WHERE id = $9`,
		req.Requester, req.Description, string(req.Nature), req.StartDate, req.EndDate,
		string(req.Destination.Type), req.Destination.Code, req.Destination.Name, req.ID,
	)
	if err != nil {
		return mapPgError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM request_requirements WHERE request_id = $1`, req.ID); err != nil {
		return err
	}
	if err := insertRequirements(ctx, tx, req.ID, req.Requirements); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the request; requirement rows cascade.
func (r *PostgresStaffingRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM staffing_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func insertRequirements(ctx context.Context, tx database.Tx, id uuid.UUID, reqs []request.Requirement) error {
	for _, rq := range reqs {
		_, err := tx.Exec(ctx,
			`INSERT INTO request_requirements (request_id, competency_label, min_rating) VALUES ($1, $2, $3)`,
			id, rq.CompetencyLabel, rq.MinRating,
		)
		if err != nil {
			return mapPgError(err)
		}
	}
	return nil
}

func (r *PostgresStaffingRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]request.StaffingRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]request.StaffingRequest, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			req      request.StaffingRequest
			nature   string
			destType string
		)
		if err := rows.Scan(
			&req.ID, &req.Requester, &req.Description, &nature, &req.StartDate, &req.EndDate,
			&destType, &req.Destination.Code, &req.Destination.Name,
		); err != nil {
			return nil, err
		}
		req.Nature = request.Nature(nature)
		req.Destination.Type = request.DestinationType(destType)
		out = append(out, req)
		ids = append(ids, req.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(out) == 0 {
		return out, nil
	}

	reqsByID, err := r.findRequirements(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Requirements = reqsByID[out[i].ID]
	}
	return out, nil
}

func (r *PostgresStaffingRequestRepository) findRequirements(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]request.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT request_id, competency_label, min_rating
		 FROM request_requirements
		 WHERE request_id = ANY($1)
		 ORDER BY competency_label ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]request.Requirement, len(ids))
	for rows.Next() {
		var (
			id uuid.UUID
			rq request.Requirement
		)
		if err := rows.Scan(&id, &rq.CompetencyLabel, &rq.MinRating); err != nil {
			return nil, err
		}
		out[id] = append(out[id], rq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
