package controller

import (
	"strconv"

	"skillcal_backend/internal/service"
	"skillcal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	Profiles    *service.ProfileService
	Recommender *service.RecommendationService
}

func NewLearnerController(profiles *service.ProfileService, recs *service.RecommendationService) *LearnerController {
	return &LearnerController{Profiles: profiles, Recommender: recs}
}

// @Summary 获取学习者档案
// @Tags 学习者
// @Produce json
// @Param learnerId path string true "学习者ID"
// @Success 200 {object} util.Response{data=model.LearnerProfile}
// @Router /api/learners/{learnerId}/profile [get]
func (c *LearnerController) GetProfile(ctx *gin.Context) {
	p, err := c.Profiles.GetProfile(ctx.Request.Context(), ctx.Param("learnerId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 测评历史
// @Tags 学习者
// @Produce json
// @Param learnerId path string true "学习者ID"
// @Param limit query int false "条数" default(20)
// @Success 200 {object} util.Response{data=[]service.AttemptView}
// @Router /api/learners/{learnerId}/history [get]
func (c *LearnerController) History(ctx *gin.Context) {
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}
	views, err := c.Profiles.History(ctx.Request.Context(), ctx.Param("learnerId"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary 推荐学习内容
// @Tags 学习者
// @Produce json
// @Param learnerId path string true "学习者ID"
// @Param limit query int false "条数" default(10)
// @Success 200 {object} util.Response{data=[]model.ContentItem}
// @Router /api/learners/{learnerId}/recommendations [get]
func (c *LearnerController) Recommendations(ctx *gin.Context) {
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}
	items, err := c.Recommender.RecommendForLearner(ctx.Request.Context(), ctx.Param("learnerId"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

func queryLimit(ctx *gin.Context) (int, bool) {
	s := ctx.Query("limit")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		util.BadRequest(ctx, "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}
