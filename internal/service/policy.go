package service

import (
	"sync/atomic"

	"skillcal_backend/internal/config"
	"skillcal_backend/internal/engine"
)

// EnginePolicy 当前生效的评分策略
type EnginePolicy struct {
	Policy                 engine.Policy
	AnswerMode             engine.AnswerMode
	RecommendLimit         int
	IncludeRecommendations bool
}

func DefaultEnginePolicy() EnginePolicy {
	return EnginePolicy{
		Policy:                 engine.DefaultPolicy(),
		AnswerMode:             engine.AnswerModePositional,
		RecommendLimit:         engine.DefaultRecommendLimit,
		IncludeRecommendations: true,
	}
}

// PolicyFromConfig 校验 engine 配置，未填写的字段使用默认值
func PolicyFromConfig(cfg config.EngineConfig) (EnginePolicy, error) {
	p := DefaultEnginePolicy()
	var err error

	if cfg.LevelPolicy != "" {
		if p.Policy.Level, err = engine.ParseLevelPolicy(cfg.LevelPolicy); err != nil {
			return EnginePolicy{}, err
		}
	}
	if cfg.MergePolicy != "" {
		if p.Policy.Merge, err = engine.ParseMergePolicy(cfg.MergePolicy); err != nil {
			return EnginePolicy{}, err
		}
	}
	if cfg.AnswerMode != "" {
		if p.AnswerMode, err = engine.ParseAnswerMode(cfg.AnswerMode); err != nil {
			return EnginePolicy{}, err
		}
	}
	if cfg.ActivityLogLimit > 0 {
		p.Policy.ActivityLimit = cfg.ActivityLogLimit
	}
	if cfg.RecommendLimit > 0 {
		p.RecommendLimit = cfg.RecommendLimit
	}
	p.IncludeRecommendations = cfg.IncludeRecommendations
	return p, nil
}

// PolicyHolder 支持热更新，读取无锁
type PolicyHolder struct {
	current atomic.Pointer[EnginePolicy]
}

func NewPolicyHolder(p EnginePolicy) *PolicyHolder {
	h := &PolicyHolder{}
	h.Store(p)
	return h
}

func (h *PolicyHolder) Load() EnginePolicy {
	return *h.current.Load()
}

func (h *PolicyHolder) Store(p EnginePolicy) {
	h.current.Store(&p)
}
