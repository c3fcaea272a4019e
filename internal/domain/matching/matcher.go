package matching

import (
	"sort"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

// EligibleExecutors returns the executors that may be scored for a
// request: active and under their daily limit. Deterministic, preserves
// roster order, no side effects.
func EligibleExecutors(roster []*executor.Executor) []*executor.Executor {
	eligible := make([]*executor.Executor, 0, len(roster))
	for _, e := range roster {
		if e.Available() {
			eligible = append(eligible, e)
		}
	}
	return eligible
}

// Search produces the ranked candidate shortlist for a spec: filter,
// score, drop zero-score executors, boost via matching distribution
// rules, rank by final score and truncate. A zero match score means "no
// basis for assignment" and excludes the executor entirely. Ties keep
// roster order (stable sort). Read-only over the snapshot; an empty
// roster yields an empty slice, never an error.
func Search(w Weights, roster []*executor.Executor, spec Spec, rules []*rule.Rule) []Candidate {
	eligible := EligibleExecutors(roster)

	candidates := make([]Candidate, 0, len(eligible))
	for _, exec := range eligible {
		matchScore, reasons := MatchScore(w, exec, spec)
		if matchScore <= 0 {
			continue
		}
		final := FinalScore(w, exec, matchScore)
		if boost := ruleBoost(w, rules, spec, exec); boost > 0 {
			final += boost
		}
		candidates = append(candidates, Candidate{
			Executor:   exec,
			MatchScore: matchScore,
			FinalScore: final,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	if len(candidates) > w.MaxResults {
		candidates = candidates[:w.MaxResults]
	}
	return candidates
}

// ruleBoost sums the priority-weighted boost of every active rule whose
// conditions hold for the pair, capped at RuleBoostCap. Rules that fail
// to evaluate are treated as not matching; validity is enforced when
// rules are created.
func ruleBoost(w Weights, rules []*rule.Rule, spec Spec, exec *executor.Executor) float64 {
	if len(rules) == 0 {
		return 0
	}
	params := spec.RuleParams(exec)
	var boost float64
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		matched, err := r.Matches(params)
		if err != nil || !matched {
			continue
		}
		boost += float64(r.Priority) * w.RuleBoostStep
	}
	return min(w.RuleBoostCap, boost)
}
