// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// handleBindError writes the standard validation failure response for a
// request that failed binding.
func handleBindError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// actingIdentity reads the authenticated account and role set by the
// auth middleware.
func actingIdentity(ctx *gin.Context) (accountID, role string) {
	return ctx.GetString(middleware.ContextAccountID), ctx.GetString(middleware.ContextRole)
}
