package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// VerificationController handles roster identity verification
type VerificationController struct {
	verificationService services.IVerificationService
}

// NewVerificationController creates a new VerificationController
func NewVerificationController(verificationService services.IVerificationService) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

// Verify checks the submitted identity against the roster. Every field
// must match exactly; the response never says which field failed.
func (c *VerificationController) Verify(ctx *gin.Context) {
	var req dto.VerifyPersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	person, err := c.verificationService.Verify(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownPerson) {
			ctx.JSON(http.StatusNotFound, dto.APIResponse{Success: false, Message: "Not verified"})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "verified", Data: person})
}
