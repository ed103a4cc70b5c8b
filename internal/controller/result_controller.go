package controller

import (
	"edusync_backend/internal/service"
	"edusync_backend/internal/util"
	"edusync_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Service   *service.ResultService
	Analytics *service.AnalyticsService
}

func NewResultController(svc *service.ResultService, analytics *service.AnalyticsService) *ResultController {
	return &ResultController{Service: svc, Analytics: analytics}
}

// Submit godoc
// @Summary Submit an assessment attempt
// @Description Records a new result row per submission. The score is
// @Description recomputed server-side; the authenticated caller is always the
// @Description attempt owner regardless of the payload.
// @Tags results
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitAttemptRequest true "attempt payload"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response "caller not enrolled in the course"
// @Failure 404 {object} util.Response "assessment not found"
// @Router /api/results [post]
func (c *ResultController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound):
			monitoring.AttemptCounter.WithLabelValues("not_found").Inc()
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotEnrolled):
			monitoring.AttemptCounter.WithLabelValues("forbidden").Inc()
			util.Forbidden(ctx)
		default:
			monitoring.AttemptCounter.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.AttemptCounter.WithLabelValues("recorded").Inc()
	util.Created(ctx, result)
}

// @Summary List all results
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/results [get]
func (c *ResultController) List(ctx *gin.Context) {
	results, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Get one result
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "result id"
// @Success 200 {object} util.Response
// @Router /api/results/{id} [get]
func (c *ResultController) Get(ctx *gin.Context) {
	result, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ByUser godoc
// @Summary A user's results grouped by assessment
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "user id"
// @Success 200 {object} util.Response
// @Router /api/results/user/{userId} [get]
func (c *ResultController) ByUser(ctx *gin.Context) {
	grouped, err := c.Analytics.ResultsByUser(ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, grouped)
}

// @Summary Update a result
// @Tags results
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "result id"
// @Param body body service.ResultUpdateRequest true "result payload"
// @Success 200 {object} util.Response
// @Router /api/results/{id} [put]
func (c *ResultController) Update(ctx *gin.Context) {
	var req service.ResultUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Delete a result
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "result id"
// @Success 204
// @Router /api/results/{id} [delete]
func (c *ResultController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
