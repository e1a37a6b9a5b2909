package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// AlumniController handles alumni endpoints
type AlumniController struct {
	alumniService services.IAlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.IAlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// Register creates a new alumni account. The request is multipart: an
// alumniData JSON part plus an optional profilePhoto file part.
func (c *AlumniController) Register(ctx *gin.Context) {
	raw := ctx.PostForm("alumniData")
	if raw == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").
			WithDetails("alumniData form field is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var data dto.AlumniData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		handleBindError(ctx, err)
		return
	}

	// Photo is optional; FormFile errors just mean none was sent
	photo, err := ctx.FormFile("profilePhoto")
	if err != nil {
		photo = nil
	}

	if err := c.alumniService.Register(ctx.Request.Context(), data, photo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Alumni created successfully"))
}

// Login authenticates an alumni
func (c *AlumniController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	token, err := c.alumniService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(token))
}

// GetProfile returns the authenticated alumni's account with roster data
func (c *AlumniController) GetProfile(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	alumni, err := c.alumniService.GetProfile(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(alumni))
}

// Update overwrites the authenticated alumni's profile fields
func (c *AlumniController) Update(ctx *gin.Context) {
	var req dto.UpdateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	accountID, _ := actingIdentity(ctx)
	if err := c.alumniService.Update(ctx.Request.Context(), accountID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Alumni details updated successfully"))
}

// Delete removes the authenticated alumni's account, cascading over its
// posts and training sessions.
func (c *AlumniController) Delete(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	if err := c.alumniService.Delete(ctx.Request.Context(), accountID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Alumni user deleted successfully"))
}

// Search finds other alumni profiles by the search query parameter
func (c *AlumniController) Search(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	alumnis, err := c.alumniService.Search(ctx.Request.Context(), ctx.Query("search"), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(alumnis))
}
