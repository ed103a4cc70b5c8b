package app

import (
	"edusync_backend/internal/config"
	"edusync_backend/internal/middleware"
	"edusync_backend/internal/model"
	"edusync_backend/pkg/monitoring"

	"edusync_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.GET("/users/me", c.auth.Me)

			authed.GET("/courses", c.course.List)
			authed.GET("/courses/:id", c.course.Get)

			authed.GET("/assessments", c.assessment.List)
			authed.GET("/assessments/:id", c.assessment.Get)
			authed.GET("/assessments/:id/questions", c.question.ListByAssessment)

			authed.GET("/results", c.result.List)
			authed.GET("/results/:id", c.result.Get)
			authed.GET("/results/user/:userId", c.result.ByUser)
			authed.POST("/results", c.result.Submit)

			student := authed.Group("")
			student.Use(middleware.RoleMiddleware(model.Student))
			{
				student.POST("/enrollments", c.enrollment.Enroll)
				student.GET("/enrollments/my", c.enrollment.MyCourses)
				student.GET("/assessments/student/enrolled", c.assessment.ForEnrolled)
			}

			instructor := authed.Group("")
			instructor.Use(middleware.RoleMiddleware(model.Instructor))
			{
				instructor.GET("/users", c.user.List)
				instructor.GET("/users/:id", c.user.Get)
				instructor.POST("/users", c.user.Create)
				instructor.PUT("/users/:id", c.user.Update)
				instructor.DELETE("/users/:id", c.user.Delete)

				instructor.POST("/courses", c.course.Create)
				instructor.PUT("/courses/:id", c.course.Update)
				instructor.DELETE("/courses/:id", c.course.Delete)
				instructor.POST("/courses/:id/media", c.course.UploadMedia)

				instructor.POST("/assessments", c.assessment.Create)
				instructor.PUT("/assessments/:id", c.assessment.Update)
				instructor.DELETE("/assessments/:id", c.assessment.Delete)

				instructor.POST("/questions", c.question.Create)
				instructor.PUT("/questions/:id", c.question.Update)
				instructor.DELETE("/questions/:id", c.question.Delete)

				instructor.GET("/enrollments/by-instructor", c.enrollment.Roster)
				instructor.GET("/enrollments/analytics/:courseId", c.enrollment.CourseAnalytics)

				instructor.PUT("/results/:id", c.result.Update)
				instructor.DELETE("/results/:id", c.result.Delete)
			}
		}
	}
}
