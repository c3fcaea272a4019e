package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/executor-balancer/executor-balancer/internal/domain/assignment"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// AssignmentRepository implements assignment.Repository and assignment.Committer.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `assignment_id, request_id, executor_id, assigned_at, status`

func (r *AssignmentRepository) Create(ctx context.Context, asg *assignment.Assignment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES ($1,$2,$3,$4,$5)
	`, asg.ID, asg.RequestID, asg.ExecutorID, asg.AssignedAt, asg.Status)
	return err
}

func (r *AssignmentRepository) GetByID(ctx context.Context, assignmentID uuid.UUID) (*assignment.Assignment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+assignmentColumns+` FROM assignments WHERE assignment_id=$1
	`, assignmentID)
	return scanAssignment(row)
}

func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*assignment.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assignmentColumns+` FROM assignments ORDER BY assigned_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *AssignmentRepository) ListByExecutor(ctx context.Context, executorID string) ([]*assignment.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assignmentColumns+` FROM assignments WHERE executor_id=$1 ORDER BY assigned_at
	`, executorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// Commit applies the assignment in one transaction. Both guarded updates
// re-check their preconditions in the WHERE clause, so a concurrent commit
// that consumed the executor's last slot or assigned the request first
// surfaces as assignment.ErrConflict rather than a double booking.
func (r *AssignmentRepository) Commit(ctx context.Context, assigned *request.Request, asg *assignment.Assignment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE executors
		SET active_requests_count = active_requests_count + 1, updated_at = NOW()
		WHERE executor_id=$1 AND status='active' AND active_requests_count < daily_limit
	`, asg.ExecutorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrConflict
	}

	tag, err = tx.Exec(ctx, `
		UPDATE requests
		SET status=$1, assigned_executor_id=$2, updated_at=$3
		WHERE request_id=$4 AND status='pending'
	`, assigned.Status, assigned.AssignedExecutorID, assigned.UpdatedAt, assigned.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrConflict
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES ($1,$2,$3,$4,$5)
	`, asg.ID, asg.RequestID, asg.ExecutorID, asg.AssignedAt, asg.Status); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func collectAssignments(rows pgx.Rows) ([]*assignment.Assignment, error) {
	var out []*assignment.Assignment
	for rows.Next() {
		asg, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asg)
	}
	return out, rows.Err()
}

func scanAssignment(row pgx.Row) (*assignment.Assignment, error) {
	var asg assignment.Assignment
	if err := row.Scan(&asg.ID, &asg.RequestID, &asg.ExecutorID, &asg.AssignedAt, &asg.Status); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &asg, nil
}
