package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

func TestComputeExecutorStats(t *testing.T) {
	e := activeExecutor("exec-1")
	e.ActiveRequestsCount = 3
	e.DailyLimit = 8

	stats := ComputeExecutorStats(e)
	assert.Equal(t, "exec-1", stats.ID)
	assert.Equal(t, 3, stats.ActiveRequests)
	assert.InDelta(t, 37.5, stats.WorkloadPercentage, 1e-9)
}

func TestComputeExecutorStatsZeroLimit(t *testing.T) {
	e := activeExecutor("exec-1")
	e.DailyLimit = 0

	stats := ComputeExecutorStats(e)
	assert.Equal(t, 0.0, stats.WorkloadPercentage)
}

func TestComputeSystemLoad(t *testing.T) {
	a := activeExecutor("a")
	a.ActiveRequestsCount = 4
	a.DailyLimit = 10

	b := activeExecutor("b")
	b.ActiveRequestsCount = 2
	b.DailyLimit = 5

	// inactive executors keep their load but add no capacity
	c := activeExecutor("c")
	c.Status = executor.StatusInactive
	c.ActiveRequestsCount = 1

	load := ComputeSystemLoad([]*executor.Executor{a, b, c})
	assert.Equal(t, 3, load.TotalExecutors)
	assert.Equal(t, 2, load.ActiveExecutors)
	assert.Equal(t, 15, load.TotalCapacity)
	assert.Equal(t, 7, load.TotalActiveRequests)
	assert.InDelta(t, 46.67, load.SystemLoadPercentage, 1e-9)
	assert.InDelta(t, 3.5, load.AverageWorkload, 1e-9)
}

func TestComputeSystemLoadEmpty(t *testing.T) {
	load := ComputeSystemLoad(nil)
	assert.Equal(t, 0, load.TotalExecutors)
	assert.Equal(t, 0.0, load.SystemLoadPercentage)
	assert.Equal(t, 0.0, load.AverageWorkload)
}
