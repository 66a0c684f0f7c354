package model

import (
	"fmt"
	"strings"
)

// SkillLevel 技能等级，按 beginner < intermediate < advanced < expert 排序
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// SkillLevels 由低到高的全部等级
var SkillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}

// Rank 等级在 SkillLevels 中的位置，未知等级返回 -1
func (l SkillLevel) Rank() int {
	for i, s := range SkillLevels {
		if s == l {
			return i
		}
	}
	return -1
}

func (l SkillLevel) Valid() bool {
	return l.Rank() >= 0
}

func (l SkillLevel) String() string {
	return string(l)
}

func ParseSkillLevel(s string) (SkillLevel, error) {
	l := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown skill level %q", s)
	}
	return l, nil
}
