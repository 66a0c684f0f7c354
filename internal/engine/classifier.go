package engine

import "skillcal_backend/internal/model"

// 等级阈值均含下界
const (
	// ExpertThreshold 达到即为 expert
	ExpertThreshold = 80
	// AdvancedThreshold 达到即为 advanced
	AdvancedThreshold = 65
	// IntermediateThreshold 达到即为 intermediate，低于则为 beginner
	IntermediateThreshold = 40
)

// Classify 将百分比映射为技能等级，超出 [0, 100] 的值先截断
func Classify(percentage int) model.SkillLevel {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	switch {
	case percentage >= ExpertThreshold:
		return model.SkillExpert
	case percentage >= AdvancedThreshold:
		return model.SkillAdvanced
	case percentage >= IntermediateThreshold:
		return model.SkillIntermediate
	default:
		return model.SkillBeginner
	}
}
