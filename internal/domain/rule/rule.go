package rule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Condition is one field comparison inside a distribution rule.
type Condition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// Rule is a distribution rule. Active rules whose conditions all hold for
// a candidate pair contribute a priority-weighted boost to the final score.
type Rule struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Priority    int         `json:"priority"`
	Conditions  []Condition `json:"conditions"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewRule creates an active rule with defaults applied.
func NewRule(name, description string, priority int, conditions []Condition) *Rule {
	if priority <= 0 {
		priority = 3
	}
	return &Rule{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Priority:    priority,
		Conditions:  conditions,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks that every condition uses a known operator and names a field.
func (r *Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if len(r.Conditions) == 0 {
		return fmt.Errorf("rule must have at least one condition")
	}
	for i, c := range r.Conditions {
		if c.Field == "" {
			return fmt.Errorf("condition %d: field is required", i)
		}
		if !validOperator(c.Operator) {
			return fmt.Errorf("condition %d: unsupported operator %q", i, c.Operator)
		}
	}
	return nil
}

func validOperator(op string) bool {
	switch op {
	case "==", "!=", ">", ">=", "<", "<=":
		return true
	}
	return false
}
