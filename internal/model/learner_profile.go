package model

import (
	"time"

	"gorm.io/datatypes"
)

const ActivityKindAssessment = "assessment"

// ActivityEntry 最近活动记录
type ActivityEntry struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Kind        string    `json:"kind"`
}

// LearnerProfile is the engine-side view of a learner: current level,
// cumulative category scores and the most recent activities (newest first).
type LearnerProfile struct {
	LearnerID      string          `json:"learnerId"`
	SkillLevel     SkillLevel      `json:"skillLevel"`
	CategoryScores map[string]int  `json:"categoryScores"`
	ActivityLog    []ActivityEntry `json:"activityLog"`
}

// NewLearnerProfile 从未测评过的学习者的初始档案
func NewLearnerProfile(learnerID string) LearnerProfile {
	return LearnerProfile{
		LearnerID:      learnerID,
		SkillLevel:     SkillBeginner,
		CategoryScores: map[string]int{},
		ActivityLog:    []ActivityEntry{},
	}
}

// LearnerProfileRecord 学习者档案表
// swagger:model LearnerProfileRecord
type LearnerProfileRecord struct {
	BaseModel
	LearnerID      string                              `gorm:"size:64;uniqueIndex;not null" json:"learnerId"`
	SkillLevel     SkillLevel                          `gorm:"size:20;default:'beginner'" json:"skillLevel"`
	CategoryScores datatypes.JSONType[map[string]int]  `json:"categoryScores"`
	ActivityLog    datatypes.JSONType[[]ActivityEntry] `json:"activityLog"`
}

func (LearnerProfileRecord) TableName() string {
	return "learner_profiles"
}

func (r *LearnerProfileRecord) Profile() LearnerProfile {
	p := NewLearnerProfile(r.LearnerID)
	if r.SkillLevel.Valid() {
		p.SkillLevel = r.SkillLevel
	}
	for k, v := range r.CategoryScores.Data() {
		p.CategoryScores[k] = v
	}
	p.ActivityLog = append(p.ActivityLog, r.ActivityLog.Data()...)
	return p
}

func (r *LearnerProfileRecord) SetProfile(p LearnerProfile) {
	r.LearnerID = p.LearnerID
	r.SkillLevel = p.SkillLevel
	r.CategoryScores = datatypes.NewJSONType(p.CategoryScores)
	r.ActivityLog = datatypes.NewJSONType(p.ActivityLog)
}
