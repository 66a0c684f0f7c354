package service

import (
	"context"
	"fmt"
	"time"

	"skillcal_backend/internal/model"
	"skillcal_backend/internal/util"
	"skillcal_backend/pkg/logger"
	"skillcal_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const defaultHistoryLimit = 20

type ProfileService struct {
	Profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{Profiles: profiles}
}

// AttemptView 历史记录的对外视图
type AttemptView struct {
	ID             string           `json:"id"`
	AssessmentID   string           `json:"assessmentId"`
	TotalScore     int              `json:"totalScore"`
	MaxScore       int              `json:"maxScore"`
	Percentage     int              `json:"percentage"`
	SkillLevel     model.SkillLevel `json:"skillLevel"`
	CategoryScores map[string]int   `json:"categoryScores"`
	SubmittedAt    string           `json:"submittedAt"`
}

func (s *ProfileService) GetProfile(ctx context.Context, learnerID string) (model.LearnerProfile, error) {
	if learnerID == "" {
		return model.LearnerProfile{}, util.ErrInvalidLearner
	}
	p, err := s.Profiles.Find(ctx, learnerID)
	if err != nil {
		monitoring.DependencyFailures.WithLabelValues("profile_store").Inc()
		logger.Log.Error("Failed to load learner profile", zap.String("learnerId", learnerID), zap.Error(err))
		return model.LearnerProfile{}, fmt.Errorf("%w: profile store: %w", util.ErrDependencyUnavailable, err)
	}
	return p, nil
}

// History 测评历史，新的在前；limit<=0 时取 20 条
func (s *ProfileService) History(ctx context.Context, learnerID string, limit int) ([]AttemptView, error) {
	if learnerID == "" {
		return nil, util.ErrInvalidLearner
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	attempts, err := s.Profiles.ListAttempts(ctx, learnerID, limit)
	if err != nil {
		monitoring.DependencyFailures.WithLabelValues("profile_store").Inc()
		logger.Log.Error("Failed to list attempts", zap.String("learnerId", learnerID), zap.Error(err))
		return nil, fmt.Errorf("%w: profile store: %w", util.ErrDependencyUnavailable, err)
	}

	views := make([]AttemptView, len(attempts))
	for i, a := range attempts {
		views[i] = AttemptView{
			ID:             a.ID,
			AssessmentID:   a.AssessmentID,
			TotalScore:     a.TotalScore,
			MaxScore:       a.MaxScore,
			Percentage:     a.Percentage,
			SkillLevel:     a.SkillLevel,
			CategoryScores: a.CategoryTotals.Data(),
			SubmittedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return views, nil
}
