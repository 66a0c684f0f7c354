package middleware

import (
	"strings"
	"unicode"

	"skillcal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	LearnerIDKey = "learnerId"
	// 与 learner_profiles.learner_id 列宽一致
	maxLearnerIDLen = 64
)

// LearnerMiddleware 校验路径中的 learnerId 并写入上下文
func LearnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(LearnerIDKey)
		if !validLearnerID(id) {
			util.BadRequest(c, util.ErrInvalidLearner.Error())
			c.Abort()
			return
		}

		c.Set(LearnerIDKey, id)
		c.Next()
	}
}

func validLearnerID(id string) bool {
	if id == "" || len(id) > maxLearnerIDLen {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}
