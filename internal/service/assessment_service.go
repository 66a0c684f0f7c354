package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillcal_backend/internal/engine"
	"skillcal_backend/internal/model"
	"skillcal_backend/internal/util"
	"skillcal_backend/pkg/logger"
	"skillcal_backend/pkg/monitoring"
	"skillcal_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AssessmentService struct {
	Bank        QuestionBank
	Profiles    ProfileStore
	Recommender *RecommendationService
	Policy      *PolicyHolder

	locks *learnerLocks
	now   func() time.Time
}

func NewAssessmentService(bank QuestionBank, profiles ProfileStore, recommender *RecommendationService, policy *PolicyHolder) *AssessmentService {
	if policy == nil {
		policy = NewPolicyHolder(DefaultEnginePolicy())
	}
	return &AssessmentService{
		Bank:        bank,
		Profiles:    profiles,
		Recommender: recommender,
		Policy:      policy,
		locks:       newLearnerLocks(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SubmissionResult 提交测评后的返回结果
type SubmissionResult struct {
	AssessmentID       string                 `json:"assessmentId"`
	TotalScore         int                    `json:"totalScore"`
	MaxScore           int                    `json:"maxScore"`
	Percentage         int                    `json:"percentage"`
	CorrectCount       int                    `json:"correctCount"`
	TotalQuestions     int                    `json:"totalQuestions"`
	SkillLevel         model.SkillLevel       `json:"skillLevel"`        // 本次测评的等级
	ProfileSkillLevel  model.SkillLevel       `json:"profileSkillLevel"` // 更新后档案中的等级
	Passed             bool                   `json:"passed"`
	CategoryScores     map[string]int         `json:"categoryScores"`
	DetailedResults    []model.QuestionResult `json:"detailedResults,omitempty"`
	RecommendedContent []model.ContentItem    `json:"recommendedContent,omitempty"`
}

func (s *AssessmentService) FetchAssessment(ctx context.Context, id string) (model.PublicAssessment, error) {
	_, span := tracing.Tracer.Start(ctx, "AssessmentService.FetchAssessment")
	defer span.End()
	span.SetAttributes(attribute.String("assessment.id", id))

	a, ok := s.Bank.Get(id)
	if !ok {
		return model.PublicAssessment{}, fmt.Errorf("%w: %s", util.ErrAssessmentNotFound, id)
	}
	return a.Public(), nil
}

func (s *AssessmentService) ListAssessments(ctx context.Context) []model.AssessmentSummary {
	all := s.Bank.List()
	out := make([]model.AssessmentSummary, len(all))
	for i, a := range all {
		out[i] = a.Summary()
	}
	return out
}

// SubmitAssessment 评分并更新学习者档案，同一学习者的提交串行处理
func (s *AssessmentService) SubmitAssessment(ctx context.Context, learnerID, assessmentID string, sub *model.Submission) (*SubmissionResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "AssessmentService.SubmitAssessment")
	defer span.End()
	span.SetAttributes(
		attribute.String("learner.id", learnerID),
		attribute.String("assessment.id", assessmentID),
	)

	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, util.ErrInvalidLearner
	}

	a, ok := s.Bank.Get(assessmentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrAssessmentNotFound, assessmentID)
	}

	policy := s.Policy.Load()
	answers, err := engine.Align(a.Questions, sub, policy.AnswerMode)
	if err != nil {
		return nil, err
	}

	result := engine.Score(a.Questions, answers)
	level := engine.Classify(result.Percentage)
	span.SetAttributes(
		attribute.Int("score.percentage", result.Percentage),
		attribute.String("score.level", string(level)),
	)

	attempt := &model.AssessmentAttempt{
		AssessmentID:   a.ID,
		TotalScore:     result.TotalScore,
		MaxScore:       result.MaxScore,
		Percentage:     result.Percentage,
		SkillLevel:     level,
		CategoryTotals: datatypes.NewJSONType(result.CategoryTotals),
		Answers:        datatypes.NewJSONType(answers),
	}
	description := "Completed " + a.Title
	now := s.now()

	unlock := s.locks.lock(learnerID)
	profile, err := s.Profiles.ApplyAssessment(ctx, learnerID, func(p model.LearnerProfile) model.LearnerProfile {
		return engine.ApplyResult(p, result, level, description, policy.Policy, now)
	}, attempt)
	unlock()
	if err != nil {
		span.RecordError(err)
		monitoring.DependencyFailures.WithLabelValues("profile_store").Inc()
		logger.Log.Error("Failed to update learner profile",
			zap.String("learnerId", learnerID),
			zap.String("assessmentId", a.ID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: profile store: %w", util.ErrDependencyUnavailable, err)
	}

	monitoring.AssessmentsScored.WithLabelValues(a.ID, string(level)).Inc()
	monitoring.AssessmentPercentage.WithLabelValues(a.ID).Observe(float64(result.Percentage))
	logger.Log.Info("Assessment scored",
		zap.String("learnerId", learnerID),
		zap.String("assessmentId", a.ID),
		zap.Int("percentage", result.Percentage),
		zap.String("level", string(level)),
		zap.String("profileLevel", string(profile.SkillLevel)))

	out := &SubmissionResult{
		AssessmentID:      a.ID,
		TotalScore:        result.TotalScore,
		MaxScore:          result.MaxScore,
		Percentage:        result.Percentage,
		CorrectCount:      result.CorrectCount,
		TotalQuestions:    result.TotalQuestions,
		SkillLevel:        level,
		ProfileSkillLevel: profile.SkillLevel,
		Passed:            result.Percentage >= a.PassingScore,
		CategoryScores:    result.CategoryTotals,
	}
	if a.ShowDetails {
		out.DetailedResults = result.Details
	}

	if policy.IncludeRecommendations && s.Recommender != nil {
		// 档案已提交，推荐失败只记日志
		items, err := s.Recommender.Recommend(ctx, profile.SkillLevel, policy.RecommendLimit)
		if err != nil {
			logger.Log.Warn("Recommendations unavailable after submit",
				zap.String("learnerId", learnerID), zap.Error(err))
		} else {
			out.RecommendedContent = items
		}
	}

	return out, nil
}
