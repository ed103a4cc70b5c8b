package controller

import (
	"edusync_backend/internal/service"
	"edusync_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Service   *service.EnrollmentService
	Analytics *service.AnalyticsService
}

func NewEnrollmentController(svc *service.EnrollmentService, analytics *service.AnalyticsService) *EnrollmentController {
	return &EnrollmentController{Service: svc, Analytics: analytics}
}

// Enroll godoc
// @Summary Enroll the caller in a course
// @Description The body is the raw course id as a JSON string.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body string true "course id"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var courseID string
	if err := ctx.ShouldBindJSON(&courseID); err != nil || courseID == "" {
		util.BadRequest(ctx, "course id is required")
		return
	}

	enrollment, err := c.Service.Enroll(claims.UserID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, enrollment)
}

// MyCourses godoc
// @Summary List the caller's enrolled courses
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/enrollments/my [get]
func (c *EnrollmentController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.Service.ListMyCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Roster godoc
// @Summary Roster of students across the caller's courses
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/enrollments/by-instructor [get]
func (c *EnrollmentController) Roster(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.Service.Roster(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// CourseAnalytics godoc
// @Summary Per-student attempt analytics for a course
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "caller does not own the course"
// @Router /api/enrollments/analytics/{courseId} [get]
func (c *EnrollmentController) CourseAnalytics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	analytics, err := c.Analytics.CourseAnalytics(ctx.Param("courseId"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
