package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

func TestPickFairlyPrefersHeadroom(t *testing.T) {
	w := DefaultWeights()

	busy := activeExecutor("busy")
	busy.ActiveRequestsCount = 8
	idle := activeExecutor("idle")
	idle.ActiveRequestsCount = 1

	chosen, ok := PickFairly(w, []*executor.Executor{busy, idle}, Spec{})
	require.True(t, ok)
	assert.Equal(t, "idle", chosen.ID)
}

func TestPickFairlySkillNarrowing(t *testing.T) {
	w := DefaultWeights()

	pythonista := activeExecutor("pythonista")
	pythonista.Specialization = []string{"Python"}
	pythonista.ActiveRequestsCount = 5

	idleDesigner := activeExecutor("designer")
	idleDesigner.Specialization = []string{"Figma"}
	idleDesigner.ActiveRequestsCount = 0

	// the designer has more headroom, but the skill narrowing wins
	chosen, ok := PickFairly(w, []*executor.Executor{idleDesigner, pythonista}, Spec{RequiredSkills: []string{"python"}})
	require.True(t, ok)
	assert.Equal(t, "pythonista", chosen.ID)
}

// Skills nobody has fall back to the full pool instead of failing.
func TestPickFairlySkillFallback(t *testing.T) {
	w := DefaultWeights()

	a := activeExecutor("a")
	a.ActiveRequestsCount = 4
	b := activeExecutor("b")
	b.ActiveRequestsCount = 0

	chosen, ok := PickFairly(w, []*executor.Executor{a, b}, Spec{RequiredSkills: []string{"cobol"}})
	require.True(t, ok)
	assert.Equal(t, "b", chosen.ID)
}

func TestPickFairlyEmptyRoster(t *testing.T) {
	chosen, ok := PickFairly(DefaultWeights(), nil, Spec{})
	assert.False(t, ok)
	assert.Nil(t, chosen)
}

// The fairness pool applies the same availability predicate as the
// candidate filter: executors at their daily limit are never picked.
func TestPickFairlyEnforcesDailyLimit(t *testing.T) {
	w := DefaultWeights()

	full := activeExecutor("full")
	full.DailyLimit = 20
	full.ActiveRequestsCount = 20

	inactive := activeExecutor("inactive")
	inactive.Status = executor.StatusOffline

	chosen, ok := PickFairly(w, []*executor.Executor{full, inactive}, Spec{})
	assert.False(t, ok)
	assert.Nil(t, chosen)
}

func TestPickFairlyTieKeepsRosterOrder(t *testing.T) {
	w := DefaultWeights()
	a := activeExecutor("a")
	b := activeExecutor("b")

	chosen, ok := PickFairly(w, []*executor.Executor{a, b}, Spec{})
	require.True(t, ok)
	assert.Equal(t, "a", chosen.ID)
}

func TestFairnessScore(t *testing.T) {
	w := DefaultWeights()
	e := activeExecutor("e")
	e.DailyLimit = 10
	e.ActiveRequestsCount = 4
	e.SuccessRate = 0.9

	// (10-4)*0.5 + 0.9*0.3 + 10*0.2
	assert.InDelta(t, 5.27, FairnessScore(w, e), 1e-9)
}
