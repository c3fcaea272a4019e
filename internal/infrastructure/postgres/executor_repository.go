package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

// ExecutorRepository implements executor.Repository.
type ExecutorRepository struct {
	pool *pgxpool.Pool
}

func NewExecutorRepository(pool *pgxpool.Pool) *ExecutorRepository {
	return &ExecutorRepository{pool: pool}
}

const executorColumns = `executor_id, name, email, role, status, weight, success_rate, experience_years,
	specialization, language_skills, timezone, daily_limit, active_requests_count, created_at, updated_at`

func (r *ExecutorRepository) Create(ctx context.Context, exec *executor.Executor) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO executors (`+executorColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`, exec.ID, exec.Name, exec.Email, exec.Role, exec.Status, exec.Weight, exec.SuccessRate, exec.ExperienceYears,
		exec.Specialization, exec.LanguageSkills, exec.Timezone, exec.DailyLimit, exec.ActiveRequestsCount,
		exec.CreatedAt, exec.UpdatedAt)
	return err
}

func (r *ExecutorRepository) GetByID(ctx context.Context, executorID string) (*executor.Executor, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+executorColumns+` FROM executors WHERE executor_id=$1
	`, executorID)
	return scanExecutor(row)
}

func (r *ExecutorRepository) GetAll(ctx context.Context) ([]*executor.Executor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+executorColumns+` FROM executors ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*executor.Executor
	for rows.Next() {
		exec, err := scanExecutor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, exec)
	}
	return out, rows.Err()
}

func (r *ExecutorRepository) Update(ctx context.Context, exec *executor.Executor) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE executors SET name=$1, email=$2, role=$3, status=$4, weight=$5, success_rate=$6,
			experience_years=$7, specialization=$8, language_skills=$9, timezone=$10,
			daily_limit=$11, active_requests_count=$12, updated_at=$13
		WHERE executor_id=$14
	`, exec.Name, exec.Email, exec.Role, exec.Status, exec.Weight, exec.SuccessRate,
		exec.ExperienceYears, exec.Specialization, exec.LanguageSkills, exec.Timezone,
		exec.DailyLimit, exec.ActiveRequestsCount, exec.UpdatedAt, exec.ID)
	return err
}

func (r *ExecutorRepository) UpdateStatus(ctx context.Context, executorID string, status executor.Status) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE executors SET status=$1, updated_at=NOW() WHERE executor_id=$2
	`, status, executorID)
	return err
}

func (r *ExecutorRepository) Delete(ctx context.Context, executorID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM executors WHERE executor_id=$1`, executorID)
	return err
}

func scanExecutor(row pgx.Row) (*executor.Executor, error) {
	var exec executor.Executor
	if err := row.Scan(&exec.ID, &exec.Name, &exec.Email, &exec.Role, &exec.Status, &exec.Weight,
		&exec.SuccessRate, &exec.ExperienceYears, &exec.Specialization, &exec.LanguageSkills,
		&exec.Timezone, &exec.DailyLimit, &exec.ActiveRequestsCount, &exec.CreatedAt, &exec.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &exec, nil
}
