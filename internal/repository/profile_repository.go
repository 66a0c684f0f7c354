package repository

import (
	"context"
	"errors"

	"skillcal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// Find 查询档案，从未测评过的学习者返回初始 beginner 档案
func (r *ProfileRepository) Find(ctx context.Context, learnerID string) (model.LearnerProfile, error) {
	var rec model.LearnerProfileRecord
	err := r.DB.WithContext(ctx).Where("learner_id = ?", learnerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewLearnerProfile(learnerID), nil
	}
	if err != nil {
		return model.LearnerProfile{}, err
	}
	return rec.Profile(), nil
}

// ApplyAssessment 在同一事务内锁定档案行、执行 mutate 并写入测评记录，任一步失败则全部回滚
func (r *ProfileRepository) ApplyAssessment(
	ctx context.Context,
	learnerID string,
	mutate func(model.LearnerProfile) model.LearnerProfile,
	attempt *model.AssessmentAttempt,
) (model.LearnerProfile, error) {
	var updated model.LearnerProfile

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 不存在则先插入默认档案，再加行锁读取
		fresh := model.LearnerProfileRecord{}
		fresh.SetProfile(model.NewLearnerProfile(learnerID))
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "learner_id"}},
			DoNothing: true,
		}).Create(&fresh).Error; err != nil {
			return err
		}

		var rec model.LearnerProfileRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("learner_id = ?", learnerID).
			First(&rec).Error; err != nil {
			return err
		}

		updated = mutate(rec.Profile())
		rec.SetProfile(updated)
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		if attempt != nil {
			attempt.LearnerID = learnerID
			if err := tx.Create(attempt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.LearnerProfile{}, err
	}
	return updated, nil
}

// ListAttempts 最近的测评记录，新的在前
func (r *ProfileRepository) ListAttempts(ctx context.Context, learnerID string, limit int) ([]model.AssessmentAttempt, error) {
	var attempts []model.AssessmentAttempt
	query := r.DB.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}
