package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

// RuleRepository implements rule.Repository. Conditions are stored as jsonb.
type RuleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

const ruleColumns = `rule_id, name, description, priority, conditions, is_active, created_at`

func (r *RuleRepository) Create(ctx context.Context, rl *rule.Rule) error {
	conditions, err := json.Marshal(rl.Conditions)
	if err != nil {
		return fmt.Errorf("failed to marshal conditions: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO rules (`+ruleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, rl.ID, rl.Name, rl.Description, rl.Priority, conditions, rl.IsActive, rl.CreatedAt)
	return err
}

func (r *RuleRepository) GetByID(ctx context.Context, ruleID uuid.UUID) (*rule.Rule, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+ruleColumns+` FROM rules WHERE rule_id=$1
	`, ruleID)
	return scanRule(row)
}

func (r *RuleRepository) GetAll(ctx context.Context) ([]*rule.Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+` FROM rules ORDER BY priority DESC, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRules(rows)
}

func (r *RuleRepository) ListActive(ctx context.Context) ([]*rule.Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+` FROM rules WHERE is_active ORDER BY priority DESC, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRules(rows)
}

func (r *RuleRepository) Delete(ctx context.Context, ruleID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rules WHERE rule_id=$1`, ruleID)
	return err
}

func collectRules(rows pgx.Rows) ([]*rule.Rule, error) {
	var out []*rule.Rule
	for rows.Next() {
		rl, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rl)
	}
	return out, rows.Err()
}

func scanRule(row pgx.Row) (*rule.Rule, error) {
	var rl rule.Rule
	var conditions []byte
	if err := row.Scan(&rl.ID, &rl.Name, &rl.Description, &rl.Priority, &conditions, &rl.IsActive, &rl.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(conditions, &rl.Conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conditions: %w", err)
	}
	return &rl, nil
}
