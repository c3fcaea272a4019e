package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// RequestRepository implements request.Repository.
type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

const requestColumns = `request_id, title, description, priority, category, complexity, required_skills,
	language_requirement, timezone_requirement, estimated_hours, status, assigned_executor_id, created_at, updated_at`

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO requests (`+requestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, req.ID, req.Title, req.Description, req.Priority, req.Category, req.Complexity, req.RequiredSkills,
		req.LanguageRequirement, req.TimezoneRequirement, req.EstimatedHours, req.Status,
		req.AssignedExecutorID, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*request.Request, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+requestColumns+` FROM requests WHERE request_id=$1
	`, requestID)
	return scanRequest(row)
}

func (r *RequestRepository) GetAll(ctx context.Context, status *request.Status) ([]*request.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE requests SET title=$1, description=$2, priority=$3, category=$4, complexity=$5,
			required_skills=$6, language_requirement=$7, timezone_requirement=$8, estimated_hours=$9,
			status=$10, assigned_executor_id=$11, updated_at=$12
		WHERE request_id=$13
	`, req.Title, req.Description, req.Priority, req.Category, req.Complexity,
		req.RequiredSkills, req.LanguageRequirement, req.TimezoneRequirement, req.EstimatedHours,
		req.Status, req.AssignedExecutorID, req.UpdatedAt, req.ID)
	return err
}

func (r *RequestRepository) Delete(ctx context.Context, requestID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM requests WHERE request_id=$1`, requestID)
	return err
}

func scanRequest(row pgx.Row) (*request.Request, error) {
	var req request.Request
	if err := row.Scan(&req.ID, &req.Title, &req.Description, &req.Priority, &req.Category, &req.Complexity,
		&req.RequiredSkills, &req.LanguageRequirement, &req.TimezoneRequirement, &req.EstimatedHours,
		&req.Status, &req.AssignedExecutorID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}
