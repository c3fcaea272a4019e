package matching

import (
	"math"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

// ExecutorStats summarizes one executor's workload.
type ExecutorStats struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	Status             string  `json:"status"`
	ActiveRequests     int     `json:"activeRequests"`
	DailyLimit         int     `json:"dailyLimit"`
	WorkloadPercentage float64 `json:"workloadPercentage"`
	SuccessRate        float64 `json:"successRate"`
	ExperienceYears    int     `json:"experienceYears"`
	Weight             float64 `json:"weight"`
}

// SystemLoad aggregates workload across the roster.
type SystemLoad struct {
	TotalExecutors       int     `json:"totalExecutors"`
	ActiveExecutors      int     `json:"activeExecutors"`
	TotalCapacity        int     `json:"totalCapacity"`
	TotalActiveRequests  int     `json:"totalActiveRequests"`
	SystemLoadPercentage float64 `json:"systemLoadPercentage"`
	AverageWorkload      float64 `json:"averageWorkload"`
}

// ComputeExecutorStats builds the per-executor workload summary.
func ComputeExecutorStats(e *executor.Executor) ExecutorStats {
	var workload float64
	if e.DailyLimit > 0 {
		workload = float64(e.ActiveRequestsCount) / float64(e.DailyLimit) * 100
	}
	return ExecutorStats{
		ID:                 e.ID,
		Name:               e.Name,
		Role:               string(e.Role),
		Status:             string(e.Status),
		ActiveRequests:     e.ActiveRequestsCount,
		DailyLimit:         e.DailyLimit,
		WorkloadPercentage: round2(workload),
		SuccessRate:        e.SuccessRate,
		ExperienceYears:    e.ExperienceYears,
		Weight:             e.Weight,
	}
}

// ComputeSystemLoad aggregates the roster. Capacity counts active
// executors only; load counts every executor's in-flight requests.
func ComputeSystemLoad(roster []*executor.Executor) SystemLoad {
	load := SystemLoad{TotalExecutors: len(roster)}
	for _, e := range roster {
		load.TotalActiveRequests += e.ActiveRequestsCount
		if e.Status == executor.StatusActive {
			load.ActiveExecutors++
			load.TotalCapacity += e.DailyLimit
		}
	}
	if load.TotalCapacity > 0 {
		load.SystemLoadPercentage = round2(float64(load.TotalActiveRequests) / float64(load.TotalCapacity) * 100)
	}
	if load.ActiveExecutors > 0 {
		load.AverageWorkload = round2(float64(load.TotalActiveRequests) / float64(load.ActiveExecutors))
	}
	return load
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
