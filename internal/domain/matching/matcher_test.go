package matching

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

func TestEligibleExecutors(t *testing.T) {
	atLimit := activeExecutor("at-limit")
	atLimit.ActiveRequestsCount = 10

	overLimit := activeExecutor("over-limit")
	overLimit.ActiveRequestsCount = 12

	inactive := activeExecutor("inactive")
	inactive.Status = executor.StatusInactive

	busy := activeExecutor("busy")
	busy.Status = executor.StatusBusy

	ok := activeExecutor("ok")

	eligible := EligibleExecutors([]*executor.Executor{atLimit, overLimit, inactive, busy, ok})
	require.Len(t, eligible, 1)
	assert.Equal(t, "ok", eligible[0].ID)
}

func TestEligibleExecutorsEmptyRoster(t *testing.T) {
	assert.Empty(t, EligibleExecutors(nil))
}

func TestSearchRanksSkilledExecutorFirst(t *testing.T) {
	w := DefaultWeights()

	x := &executor.Executor{
		ID: "x", Role: executor.RoleProgrammer, Status: executor.StatusActive,
		Weight: 0.9, SuccessRate: 0.95, ExperienceYears: 5,
		Specialization: []string{"Python", "React"}, LanguageSkills: []string{"ru"},
		Timezone: "MSK", DailyLimit: 10, ActiveRequestsCount: 0,
	}
	y := &executor.Executor{
		ID: "y", Role: executor.RoleDesigner, Status: executor.StatusActive,
		Weight: 0.5, SuccessRate: 0.7, ExperienceYears: 2,
		Specialization: []string{"Figma"}, LanguageSkills: []string{"ru"},
		Timezone: "MSK", DailyLimit: 10, ActiveRequestsCount: 3,
	}

	spec := Spec{
		Priority:            request.PriorityHigh,
		Category:            request.CategoryTechnical,
		Complexity:          request.ComplexityMedium,
		RequiredSkills:      []string{"python"},
		LanguageRequirement: "both",
		TimezoneRequirement: "any",
	}

	results := Search(w, []*executor.Executor{y, x}, spec, nil)
	require.Len(t, results, 2)
	assert.Equal(t, "x", results[0].Executor.ID)
	assert.Equal(t, "y", results[1].Executor.ID)
	assert.Greater(t, results[0].FinalScore, results[1].FinalScore)

	assert.Contains(t, strings.Join(results[0].Reasons, "\n"), "skill match")
	assert.NotContains(t, strings.Join(results[1].Reasons, "\n"), "skill match")
}

func TestSearchSortedAndTruncated(t *testing.T) {
	w := DefaultWeights()
	roster := make([]*executor.Executor, 0, 15)
	for i := 0; i < 15; i++ {
		e := activeExecutor(fmt.Sprintf("exec-%d", i))
		e.ActiveRequestsCount = i % 7
		e.DailyLimit = 20
		roster = append(roster, e)
	}

	results := Search(w, roster, basicSpec(), nil)
	require.Len(t, results, 10)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].FinalScore, results[i].FinalScore)
	}
}

// Ties keep roster order: the sort is stable by contract, not by accident.
func TestSearchStableTieBreak(t *testing.T) {
	w := DefaultWeights()
	roster := []*executor.Executor{activeExecutor("first"), activeExecutor("second"), activeExecutor("third")}

	results := Search(w, roster, basicSpec(), nil)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Executor.ID)
	assert.Equal(t, "second", results[1].Executor.ID)
	assert.Equal(t, "third", results[2].Executor.ID)
}

func TestSearchEmptyRoster(t *testing.T) {
	results := Search(DefaultWeights(), nil, basicSpec(), nil)
	assert.Empty(t, results)
}

func TestSearchExcludesUnavailable(t *testing.T) {
	w := DefaultWeights()
	full := activeExecutor("full")
	full.ActiveRequestsCount = full.DailyLimit

	results := Search(w, []*executor.Executor{full}, basicSpec(), nil)
	assert.Empty(t, results)
}

func TestSearchRuleBoost(t *testing.T) {
	w := DefaultWeights()
	junior := activeExecutor("junior")
	junior.ExperienceYears = 3
	senior := activeExecutor("senior")
	senior.ExperienceYears = 4

	boost := rule.NewRule("prefer juniors on dev", "", 3, []rule.Condition{
		{Field: "experienceYears", Operator: "<=", Value: 3},
		{Field: "category", Operator: "==", Value: "development"},
	})

	base := Search(w, []*executor.Executor{junior, senior}, basicSpec(), nil)
	boosted := Search(w, []*executor.Executor{junior, senior}, basicSpec(), []*rule.Rule{boost})

	require.Len(t, base, 2)
	require.Len(t, boosted, 2)
	// senior outranks junior without the rule (8 vs 6 experience points,
	// +1 final bonus point); the priority-3 boost (+6) flips the order.
	assert.Equal(t, "senior", base[0].Executor.ID)
	assert.Equal(t, "junior", boosted[0].Executor.ID)
}

func TestSearchInactiveRuleIgnored(t *testing.T) {
	w := DefaultWeights()
	exec := activeExecutor("exec-1")

	r := rule.NewRule("disabled", "", 5, []rule.Condition{
		{Field: "category", Operator: "==", Value: "development"},
	})
	r.IsActive = false

	base := Search(w, []*executor.Executor{exec}, basicSpec(), nil)
	withRule := Search(w, []*executor.Executor{exec}, basicSpec(), []*rule.Rule{r})
	assert.Equal(t, base[0].FinalScore, withRule[0].FinalScore)
}
