package engine

import "skillcal_backend/internal/model"

// Recommend 按目录顺序返回 level 或 beginner 等级的已发布内容，最多 limit 条，
// beginner 内容始终可用于复习。结果不为 nil
func Recommend(catalog []model.ContentItem, level model.SkillLevel, limit int) []model.ContentItem {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	out := make([]model.ContentItem, 0, min(limit, len(catalog)))
	for _, item := range catalog {
		if len(out) == limit {
			break
		}
		if !item.IsPublished {
			continue
		}
		if item.Classification == level || item.Classification == model.SkillBeginner {
			out = append(out, item)
		}
	}
	return out
}

// EligibleLevels Recommend 对 level 接受的内容等级
func EligibleLevels(level model.SkillLevel) []model.SkillLevel {
	if level == model.SkillBeginner || !level.Valid() {
		return []model.SkillLevel{model.SkillBeginner}
	}
	return []model.SkillLevel{level, model.SkillBeginner}
}
