package matching

import (
	"strings"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

// PickFairly selects one executor for automatic load-balanced placement.
// It optimizes headroom and reliability over skill precision: the pool is
// every available executor, narrowed by skill intersection when the spec
// names required skills, falling back to the full pool when nobody
// matches. Highest fairness score wins, ties keep roster order. The
// boolean is false when no executor is available at all.
//
// Unlike the ranked search this path applies the same daily-limit
// predicate as the candidate filter; both paths share Available().
func PickFairly(w Weights, roster []*executor.Executor, spec Spec) (*executor.Executor, bool) {
	pool := EligibleExecutors(roster)
	if len(pool) == 0 {
		return nil, false
	}

	if len(spec.RequiredSkills) > 0 {
		narrowed := make([]*executor.Executor, 0, len(pool))
		for _, e := range pool {
			if skillIntersects(spec.RequiredSkills, e.Specialization) {
				narrowed = append(narrowed, e)
			}
		}
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}

	best := pool[0]
	bestScore := FairnessScore(w, best)
	for _, e := range pool[1:] {
		if score := FairnessScore(w, e); score > bestScore {
			best = e
			bestScore = score
		}
	}
	return best, true
}

// FairnessScore weighs idle capacity, success rate and total capacity.
func FairnessScore(w Weights, e *executor.Executor) float64 {
	headroom := float64(e.DailyLimit - e.ActiveRequestsCount)
	return headroom*w.FairnessHeadroom +
		e.SuccessRate*w.FairnessSuccess +
		float64(e.DailyLimit)*w.FairnessCapacity
}

func skillIntersects(required, specialization []string) bool {
	for _, skill := range required {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		for _, token := range specialization {
			if strings.EqualFold(strings.TrimSpace(token), needle) {
				return true
			}
		}
	}
	return false
}
