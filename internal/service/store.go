package service

import (
	"context"

	"skillcal_backend/internal/model"
)

// ProfileStore 学习者档案存储，ApplyAssessment 必须原子执行：档案与测评记录同时写入或都不写入
type ProfileStore interface {
	Find(ctx context.Context, learnerID string) (model.LearnerProfile, error)
	ApplyAssessment(ctx context.Context, learnerID string, mutate func(model.LearnerProfile) model.LearnerProfile, attempt *model.AssessmentAttempt) (model.LearnerProfile, error)
	ListAttempts(ctx context.Context, learnerID string, limit int) ([]model.AssessmentAttempt, error)
}

// CourseStore 课程目录查询
type CourseStore interface {
	FindPublishedByLevels(ctx context.Context, levels []model.SkillLevel) ([]model.ContentItem, error)
}

// CatalogCache 推荐候选缓存，未命中或出错时回源数据库
type CatalogCache interface {
	Get(ctx context.Context, levels []model.SkillLevel) ([]model.ContentItem, bool, error)
	Set(ctx context.Context, levels []model.SkillLevel, items []model.ContentItem) error
}

// QuestionBank 只读题库
type QuestionBank interface {
	Get(id string) (model.Assessment, bool)
	List() []model.Assessment
}
