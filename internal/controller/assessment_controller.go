package controller

import (
	"skillcal_backend/internal/model"
	"skillcal_backend/internal/service"
	"skillcal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取测评列表
// @Tags 测评
// @Produce json
// @Success 200 {object} util.Response{data=[]model.AssessmentSummary}
// @Router /api/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListAssessments(ctx.Request.Context()))
}

// @Summary 获取测评题目（不含答案）
// @Tags 测评
// @Produce json
// @Param id path string true "测评ID"
// @Success 200 {object} util.Response{data=model.PublicAssessment}
// @Failure 404 {object} util.Response
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	a, err := c.Service.FetchAssessment(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary 提交测评答案
// @Description answers 按题目顺序作答，或 answersById 以题目ID为键作答
// @Tags 测评
// @Accept json
// @Produce json
// @Param learnerId path string true "学习者ID"
// @Param id path string true "测评ID"
// @Param body body model.Submission true "作答"
// @Success 200 {object} util.Response{data=service.SubmissionResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/learners/{learnerId}/assessments/{id}/submit [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	var sub model.Submission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.SubmitAssessment(ctx.Request.Context(), ctx.Param("learnerId"), ctx.Param("id"), &sub)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
