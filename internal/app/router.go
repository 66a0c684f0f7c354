package app

import (
	"skillcal_backend/internal/middleware"
	"skillcal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/assessments", c.assessment.ListAssessments)
		api.GET("/assessments/:id", c.assessment.GetAssessment)
	}

	// 学习者相关接口，learnerId 由上游网关认证后传入
	learners := api.Group("/learners/:learnerId")
	learners.Use(middleware.LearnerMiddleware())
	{
		learners.POST("/assessments/:id/submit", c.assessment.SubmitAssessment)
		learners.GET("/profile", c.learner.GetProfile)
		learners.GET("/history", c.learner.History)
		learners.GET("/recommendations", c.learner.Recommendations)
	}
}
