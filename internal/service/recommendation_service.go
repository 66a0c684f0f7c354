package service

import (
	"context"
	"fmt"

	"skillcal_backend/internal/engine"
	"skillcal_backend/internal/model"
	"skillcal_backend/internal/util"
	"skillcal_backend/pkg/logger"
	"skillcal_backend/pkg/monitoring"
	"skillcal_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type RecommendationService struct {
	Courses  CourseStore
	Cache    CatalogCache
	Profiles ProfileStore
	Policy   *PolicyHolder
}

func NewRecommendationService(courses CourseStore, cache CatalogCache, profiles ProfileStore, policy *PolicyHolder) *RecommendationService {
	return &RecommendationService{Courses: courses, Cache: cache, Profiles: profiles, Policy: policy}
}

// Recommend 返回适合 level 的已发布内容（同级或入门级），limit<=0 使用配置默认值
func (s *RecommendationService) Recommend(ctx context.Context, level model.SkillLevel, limit int) ([]model.ContentItem, error) {
	ctx, span := tracing.Tracer.Start(ctx, "RecommendationService.Recommend")
	defer span.End()
	span.SetAttributes(attribute.String("skill_level", string(level)))

	if limit <= 0 && s.Policy != nil {
		limit = s.Policy.Load().RecommendLimit
	}

	levels := engine.EligibleLevels(level)
	items, err := s.candidates(ctx, levels)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return engine.Recommend(items, level, limit), nil
}

// RecommendForLearner 按学习者档案中的当前等级推荐
func (s *RecommendationService) RecommendForLearner(ctx context.Context, learnerID string, limit int) ([]model.ContentItem, error) {
	if learnerID == "" {
		return nil, util.ErrInvalidLearner
	}
	profile, err := s.Profiles.Find(ctx, learnerID)
	if err != nil {
		monitoring.DependencyFailures.WithLabelValues("profile_store").Inc()
		logger.Log.Error("Failed to load learner profile", zap.String("learnerId", learnerID), zap.Error(err))
		return nil, fmt.Errorf("%w: profile store: %w", util.ErrDependencyUnavailable, err)
	}
	return s.Recommend(ctx, profile.SkillLevel, limit)
}

func (s *RecommendationService) candidates(ctx context.Context, levels []model.SkillLevel) ([]model.ContentItem, error) {
	if s.Cache != nil {
		items, ok, err := s.Cache.Get(ctx, levels)
		if err != nil {
			// 缓存不可用时回源数据库
			monitoring.DependencyFailures.WithLabelValues("cache").Inc()
			logger.Log.Warn("Catalog cache read failed", zap.Error(err))
		} else if ok {
			return items, nil
		}
	}

	items, err := s.Courses.FindPublishedByLevels(ctx, levels)
	if err != nil {
		monitoring.DependencyFailures.WithLabelValues("course_catalog").Inc()
		logger.Log.Error("Failed to query course catalog", zap.Any("levels", levels), zap.Error(err))
		return nil, fmt.Errorf("%w: course catalog: %w", util.ErrDependencyUnavailable, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, levels, items); err != nil {
			monitoring.DependencyFailures.WithLabelValues("cache").Inc()
			logger.Log.Warn("Catalog cache write failed", zap.Error(err))
		}
	}
	return items, nil
}
