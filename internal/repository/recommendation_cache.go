package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skillcal_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const recommendationKeyPrefix = "skillcal:catalog:"

// RecommendationCache 缓存按等级筛选后的已发布课程。nil 或未配置 Redis 时不生效
type RecommendationCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRecommendationCache(rdb *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{Redis: rdb, TTL: ttl}
}

func (c *RecommendationCache) enabled() bool {
	return c != nil && c.Redis != nil && c.TTL > 0
}

func cacheKey(levels []model.SkillLevel) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = string(l)
	}
	return recommendationKeyPrefix + strings.Join(parts, ",")
}

// Get 仅当缓存存在且能正常解码时返回命中
func (c *RecommendationCache) Get(ctx context.Context, levels []model.SkillLevel) ([]model.ContentItem, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}
	val, err := c.Redis.Get(ctx, cacheKey(levels)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []model.ContentItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, levels []model.SkillLevel, items []model.ContentItem) error {
	if !c.enabled() {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, cacheKey(levels), data, c.TTL).Err()
}
