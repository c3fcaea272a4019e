package matching

import (
	"fmt"
	"strings"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

// MatchScore computes the raw compatibility score between an executor and
// a spec. Components are evaluated in a fixed order, each appending a
// reason when it contributes. The nominal component sum can exceed the
// cap; clamping to MatchScoreCap is intentional policy.
func MatchScore(w Weights, exec *executor.Executor, spec Spec) (float64, []string) {
	var score float64
	var reasons []string

	roleScore := w.RoleFallback
	if categories, ok := w.RoleAffinity[exec.Role]; ok {
		if s, ok := categories[spec.Category]; ok {
			roleScore = s
		}
	}
	score += roleScore
	reasons = append(reasons, fmt.Sprintf("role/category affinity: +%.0f", roleScore))

	required := w.DefaultTier
	if tier, ok := w.ComplexityTiers[spec.Complexity]; ok {
		required = tier
	}
	if exec.ExperienceYears >= required {
		expScore := min(w.ExperienceCap, float64(exec.ExperienceYears)*w.ExperiencePerYear)
		score += expScore
		reasons = append(reasons, fmt.Sprintf("sufficient experience: +%.0f", expScore))
	}

	if languageMatches(spec.LanguageRequirement, exec.LanguageSkills) {
		score += w.LanguageScore
		reasons = append(reasons, fmt.Sprintf("language requirement met: +%.0f", w.LanguageScore))
	}

	if spec.TimezoneRequirement == "any" || spec.TimezoneRequirement == exec.Timezone {
		score += w.TimezoneScore
		reasons = append(reasons, fmt.Sprintf("timezone match: +%.0f", w.TimezoneScore))
	}

	if len(spec.RequiredSkills) > 0 {
		matched := matchedSkillCount(spec.RequiredSkills, exec.Specialization)
		if matched > 0 {
			skillScore := float64(matched) / float64(len(spec.RequiredSkills)) * w.SkillCap
			score += skillScore
			reasons = append(reasons, fmt.Sprintf("skill match: +%.1f", skillScore))
		}
	}

	priorityScore := w.DefaultPriorityScore
	if s, ok := w.PriorityScores[spec.Priority]; ok {
		priorityScore = s
	}
	score += priorityScore
	reasons = append(reasons, fmt.Sprintf("priority weight: +%.0f", priorityScore))

	return min(w.MatchScoreCap, score), reasons
}

// FinalScore adjusts a match score for fairness and reliability. Unlike
// the match score it has no upper cap, so the load penalty and bonuses
// can reorder an otherwise tied field. Floored at zero.
func FinalScore(w Weights, exec *executor.Executor, matchScore float64) float64 {
	final := matchScore
	final += exec.Weight * w.WeightBonusCap
	final += exec.SuccessRate * w.SuccessBonusCap
	final += min(w.ExperienceBonusCap, float64(exec.ExperienceYears))
	final -= float64(exec.ActiveRequestsCount) * w.LoadPenaltyPerRequest
	return max(0, final)
}

func languageMatches(requirement string, skills []string) bool {
	if requirement == "both" {
		return true
	}
	for _, s := range skills {
		if strings.EqualFold(strings.TrimSpace(s), requirement) {
			return true
		}
	}
	return false
}

// matchedSkillCount counts required skills that appear case-insensitively
// inside any specialization token.
func matchedSkillCount(required, specialization []string) int {
	matched := 0
	for _, skill := range required {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		for _, token := range specialization {
			if strings.Contains(strings.ToLower(strings.TrimSpace(token)), needle) {
				matched++
				break
			}
		}
	}
	return matched
}
