package controller

import (
	"edusync_backend/internal/service"
	"edusync_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.AssessmentService
}

func NewQuestionController(svc *service.AssessmentService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List an assessment's questions
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id}/questions [get]
func (c *QuestionController) ListByAssessment(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "question payload"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response "caller does not own the course"
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req, claims.UserID)
	if err != nil {
		c.translateError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.QuestionRequest true "question payload"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Param("id"), req, claims.UserID)
	if err != nil {
		c.translateError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 204
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteQuestion(ctx.Param("id"), claims.UserID); err != nil {
		c.translateError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func (c *QuestionController) translateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionTextRequired), errors.Is(err, util.ErrOptionsRequired):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
