package rule

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

// Matches evaluates the rule's conditions against a parameter map built
// from one executor/request pair. Conditions are conjunctive. Values are
// passed as expression parameters, never interpolated into the source, so
// arbitrary strings cannot break the expression.
func (r *Rule) Matches(params map[string]interface{}) (bool, error) {
	if len(r.Conditions) == 0 {
		return false, nil
	}

	clauses := make([]string, 0, len(r.Conditions))
	evalParams := make(map[string]interface{}, len(params)+len(r.Conditions))
	for k, v := range params {
		evalParams[k] = v
	}
	for i, c := range r.Conditions {
		if !validOperator(c.Operator) {
			return false, fmt.Errorf("unsupported operator %q", c.Operator)
		}
		if _, ok := evalParams[c.Field]; !ok {
			// Unknown field means the rule does not apply.
			return false, nil
		}
		ref := fmt.Sprintf("__v%d", i)
		evalParams[ref] = normalizeValue(c.Value)
		clauses = append(clauses, fmt.Sprintf("[%s] %s [%s]", c.Field, c.Operator, ref))
	}

	expr, err := govaluate.NewEvaluableExpression(strings.Join(clauses, " && "))
	if err != nil {
		return false, err
	}
	result, err := expr.Evaluate(evalParams)
	if err != nil {
		return false, err
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("rule %q did not evaluate to boolean", r.Name)
	}
	return matched, nil
}

// normalizeValue widens numeric JSON values so govaluate compares like
// with like. Integers arriving via JSON decode as float64 already; this
// covers values constructed in code.
func normalizeValue(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
