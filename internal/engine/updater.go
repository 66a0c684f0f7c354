package engine

import (
	"time"

	"skillcal_backend/internal/model"
)

// ApplyResult 在 profile 的副本上合并本次测评结果并返回，原 profile 不变
func ApplyResult(profile model.LearnerProfile, result model.ScoreResult, newLevel model.SkillLevel, description string, policy Policy, now time.Time) model.LearnerProfile {
	out := model.LearnerProfile{
		LearnerID:      profile.LearnerID,
		SkillLevel:     profile.SkillLevel,
		CategoryScores: make(map[string]int, len(profile.CategoryScores)+len(result.CategoryTotals)),
	}
	if !out.SkillLevel.Valid() {
		out.SkillLevel = model.SkillBeginner
	}
	for k, v := range profile.CategoryScores {
		out.CategoryScores[k] = v
	}

	if newLevel.Valid() {
		switch policy.Level {
		case LevelPolicyOverwrite:
			out.SkillLevel = newLevel
		default:
			if newLevel.Rank() > out.SkillLevel.Rank() {
				out.SkillLevel = newLevel
			}
		}
	}

	for cat, pts := range result.CategoryTotals {
		switch policy.Merge {
		case MergePolicySnapshot:
			out.CategoryScores[cat] = pts
		default:
			out.CategoryScores[cat] += pts
		}
	}

	limit := policy.ActivityLimit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	log := make([]model.ActivityEntry, 0, limit)
	log = append(log, model.ActivityEntry{
		Description: description,
		Timestamp:   now,
		Kind:        model.ActivityKindAssessment,
	})
	for _, e := range profile.ActivityLog {
		if len(log) == limit {
			break
		}
		log = append(log, e)
	}
	out.ActivityLog = log

	return out
}
