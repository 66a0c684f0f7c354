package model

import "gorm.io/datatypes"

// AssessmentAttempt 测评历史记录，每次成功提交写入一条
// swagger:model AssessmentAttempt
type AssessmentAttempt struct {
	UUIDBase
	LearnerID      string                             `gorm:"size:64;index;not null" json:"learnerId"`
	AssessmentID   string                             `gorm:"size:100;index;not null" json:"assessmentId"`
	TotalScore     int                                `json:"totalScore"`
	MaxScore       int                                `json:"maxScore"`
	Percentage     int                                `json:"percentage"`
	SkillLevel     SkillLevel                         `gorm:"size:20" json:"skillLevel"`
	CategoryTotals datatypes.JSONType[map[string]int] `json:"categoryScores"`
	Answers        datatypes.JSONType[[]string]       `json:"answers"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}
