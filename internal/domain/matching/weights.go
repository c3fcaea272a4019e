package matching

import (
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// Weights holds every table and multiplier used by the scoring model and
// the fairness selector. Both selection paths read the same instance so
// there is a single source of truth for the constants.
type Weights struct {
	// Role-category affinity table; RoleFallback applies to unseen pairs.
	RoleAffinity map[executor.Role]map[request.Category]float64
	RoleFallback float64

	// Minimum experience years required per complexity tier.
	ComplexityTiers map[request.Complexity]int
	DefaultTier     int

	PriorityScores       map[request.Priority]float64
	DefaultPriorityScore float64

	ExperiencePerYear float64
	ExperienceCap     float64
	LanguageScore     float64
	TimezoneScore     float64
	SkillCap          float64
	MatchScoreCap     float64

	// Final-score adjustments.
	WeightBonusCap        float64
	SuccessBonusCap       float64
	ExperienceBonusCap    float64
	LoadPenaltyPerRequest float64

	// Distribution-rule boost: step per rule priority point, capped.
	RuleBoostStep float64
	RuleBoostCap  float64

	MaxResults int

	// Fairness selector coefficients.
	FairnessHeadroom float64
	FairnessSuccess  float64
	FairnessCapacity float64
}

// DefaultWeights returns the canonical scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		RoleAffinity: map[executor.Role]map[request.Category]float64{
			executor.RoleAdmin:      {request.CategoryTechnical: 15, request.CategorySupport: 20, request.CategoryDevelopment: 10, request.CategoryTesting: 5, request.CategoryDesign: 5, request.CategoryMarketing: 10},
			executor.RoleProgrammer: {request.CategoryTechnical: 20, request.CategorySupport: 10, request.CategoryDevelopment: 20, request.CategoryTesting: 15, request.CategoryDesign: 5, request.CategoryMarketing: 5},
			executor.RoleModerator:  {request.CategoryTechnical: 10, request.CategorySupport: 20, request.CategoryDevelopment: 5, request.CategoryTesting: 10, request.CategoryDesign: 5, request.CategoryMarketing: 15},
			executor.RoleSupport:    {request.CategoryTechnical: 15, request.CategorySupport: 20, request.CategoryDevelopment: 5, request.CategoryTesting: 10, request.CategoryDesign: 5, request.CategoryMarketing: 10},
			executor.RoleTester:     {request.CategoryTechnical: 15, request.CategorySupport: 10, request.CategoryDevelopment: 10, request.CategoryTesting: 20, request.CategoryDesign: 5, request.CategoryMarketing: 5},
			executor.RoleDesigner:   {request.CategoryTechnical: 5, request.CategorySupport: 5, request.CategoryDevelopment: 10, request.CategoryTesting: 5, request.CategoryDesign: 20, request.CategoryMarketing: 15},
			executor.RoleAnalyst:    {request.CategoryTechnical: 15, request.CategorySupport: 15, request.CategoryDevelopment: 15, request.CategoryTesting: 15, request.CategoryDesign: 10, request.CategoryMarketing: 15},
			executor.RoleManager:    {request.CategoryTechnical: 10, request.CategorySupport: 15, request.CategoryDevelopment: 15, request.CategoryTesting: 10, request.CategoryDesign: 10, request.CategoryMarketing: 20},
		},
		RoleFallback: 5,

		ComplexityTiers: map[request.Complexity]int{
			request.ComplexityLow:    1,
			request.ComplexityMedium: 3,
			request.ComplexityHigh:   5,
			request.ComplexityExpert: 8,
		},
		DefaultTier: 3,

		PriorityScores: map[request.Priority]float64{
			request.PriorityCritical: 10,
			request.PriorityHigh:     8,
			request.PriorityMedium:   5,
			request.PriorityLow:      2,
		},
		DefaultPriorityScore: 5,

		ExperiencePerYear: 2,
		ExperienceCap:     15,
		LanguageScore:     10,
		TimezoneScore:     5,
		SkillCap:          20,
		MatchScoreCap:     100,

		WeightBonusCap:        20,
		SuccessBonusCap:       15,
		ExperienceBonusCap:    10,
		LoadPenaltyPerRequest: 5,

		RuleBoostStep: 2,
		RuleBoostCap:  10,

		MaxResults: 10,

		FairnessHeadroom: 0.5,
		FairnessSuccess:  0.3,
		FairnessCapacity: 0.2,
	}
}
