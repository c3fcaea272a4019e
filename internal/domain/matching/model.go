package matching

import (
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// Spec is the normalized search input: the request attributes the scoring
// model reads, constructed once at the boundary so the engine never
// inspects storage shapes at runtime.
type Spec struct {
	Title               string             `json:"title"`
	Priority            request.Priority   `json:"priority"`
	Category            request.Category   `json:"category"`
	Complexity          request.Complexity `json:"complexity"`
	RequiredSkills      []string           `json:"requiredSkills,omitempty"`
	LanguageRequirement string             `json:"languageRequirement"`
	TimezoneRequirement string             `json:"timezoneRequirement"`
	EstimatedHours      int                `json:"estimatedHours"`
}

// SpecFromRequest builds a Spec from a stored request.
func SpecFromRequest(req *request.Request) Spec {
	return Spec{
		Title:               req.Title,
		Priority:            req.Priority,
		Category:            req.Category,
		Complexity:          req.Complexity,
		RequiredSkills:      req.RequiredSkills,
		LanguageRequirement: req.LanguageRequirement,
		TimezoneRequirement: req.TimezoneRequirement,
		EstimatedHours:      req.EstimatedHours,
	}
}

// RuleParams flattens one executor/spec pair into the parameter map that
// distribution rule conditions are evaluated against.
func (s Spec) RuleParams(exec *executor.Executor) map[string]interface{} {
	return map[string]interface{}{
		"title":               s.Title,
		"priority":            string(s.Priority),
		"category":            string(s.Category),
		"complexity":          string(s.Complexity),
		"languageRequirement": s.LanguageRequirement,
		"timezoneRequirement": s.TimezoneRequirement,
		"estimatedHours":      float64(s.EstimatedHours),
		"role":                string(exec.Role),
		"timezone":            exec.Timezone,
		"weight":              exec.Weight,
		"successRate":         exec.SuccessRate,
		"experienceYears":     float64(exec.ExperienceYears),
		"activeRequests":      float64(exec.ActiveRequestsCount),
		"dailyLimit":          float64(exec.DailyLimit),
	}
}

// Candidate is one ranked search result. Transient, never persisted.
type Candidate struct {
	Executor   *executor.Executor `json:"executor"`
	MatchScore float64            `json:"matchScore"`
	FinalScore float64            `json:"finalScore"`
	Reasons    []string           `json:"reasons"`
}
