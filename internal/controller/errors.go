package controller

import (
	"errors"

	"skillcal_backend/internal/engine"
	"skillcal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidSubmission), errors.Is(err, util.ErrInvalidLearner):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrDependencyUnavailable):
		util.ServiceUnavailable(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
