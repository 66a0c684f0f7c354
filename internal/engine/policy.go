package engine

import (
	"fmt"
	"strings"
)

// LevelPolicy 新等级写入档案的方式
type LevelPolicy string

const (
	// LevelPolicyRatchet 只升不降
	LevelPolicyRatchet LevelPolicy = "ratchet"
	// LevelPolicyOverwrite 总是使用最新一次的等级
	LevelPolicyOverwrite LevelPolicy = "overwrite"
)

// MergePolicy 本次分类得分并入档案的方式
type MergePolicy string

const (
	// MergePolicyAdditive 累加历次得分
	MergePolicyAdditive MergePolicy = "additive"
	// MergePolicySnapshot 本次出现的分类以最新得分覆盖，未出现的分类保持不变
	MergePolicySnapshot MergePolicy = "snapshot"
)

// AnswerMode 答案与题目的对应方式
type AnswerMode string

const (
	AnswerModePositional AnswerMode = "positional"
	AnswerModeKeyed      AnswerMode = "keyed"
)

const (
	DefaultActivityLimit  = 5
	DefaultRecommendLimit = 10
)

type Policy struct {
	Level         LevelPolicy
	Merge         MergePolicy
	ActivityLimit int
}

func DefaultPolicy() Policy {
	return Policy{
		Level:         LevelPolicyRatchet,
		Merge:         MergePolicyAdditive,
		ActivityLimit: DefaultActivityLimit,
	}
}

func ParseLevelPolicy(s string) (LevelPolicy, error) {
	switch p := LevelPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case LevelPolicyRatchet, LevelPolicyOverwrite:
		return p, nil
	}
	return "", fmt.Errorf("%w: level policy %q", ErrUnknownPolicy, s)
}

func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case MergePolicyAdditive, MergePolicySnapshot:
		return p, nil
	}
	return "", fmt.Errorf("%w: merge policy %q", ErrUnknownPolicy, s)
}

func ParseAnswerMode(s string) (AnswerMode, error) {
	switch m := AnswerMode(strings.ToLower(strings.TrimSpace(s))); m {
	case AnswerModePositional, AnswerModeKeyed:
		return m, nil
	}
	return "", fmt.Errorf("%w: answer mode %q", ErrUnknownPolicy, s)
}
