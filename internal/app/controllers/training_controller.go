package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// TrainingController handles training session endpoints
type TrainingController struct {
	trainingService services.ITrainingService
}

// NewTrainingController creates a new TrainingController
func NewTrainingController(trainingService services.ITrainingService) *TrainingController {
	return &TrainingController{trainingService: trainingService}
}

// Create announces a training session owned by the authenticated alumni
func (c *TrainingController) Create(ctx *gin.Context) {
	var req dto.CreateTrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	accountID, _ := actingIdentity(ctx)
	training, err := c.trainingService.Create(ctx.Request.Context(), accountID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(training))
}

// ListAll returns every training session with owner profiles joined
func (c *TrainingController) ListAll(ctx *gin.Context) {
	trainings, err := c.trainingService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(trainings))
}

// ListByType returns training sessions of the type given in the path.
// Private sessions are for the alumni community; students only see
// public ones.
func (c *TrainingController) ListByType(ctx *gin.Context) {
	trainingType := models.TrainingType(ctx.Param("trainingType"))

	_, role := actingIdentity(ctx)
	if trainingType == models.TrainingPrivate && models.Role(role) == models.RoleStudent {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied").
			WithDetails("Private training sessions are restricted to the alumni community")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	trainings, err := c.trainingService.ListByType(ctx.Request.Context(), trainingType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(trainings))
}

// ListMine returns the authenticated alumni's own training sessions
func (c *TrainingController) ListMine(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	trainings, err := c.trainingService.ListMine(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(trainings))
}

// Delete removes a training session by path parameter. Owners and
// admins only.
func (c *TrainingController) Delete(ctx *gin.Context) {
	accountID, role := actingIdentity(ctx)

	err := c.trainingService.Delete(ctx.Request.Context(), ctx.Param("trainingId"), accountID, models.Role(role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Training post deleted successfully"))
}
