package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/metrics"
)

// HandleAPIError maps service errors onto HTTP responses.
// CustomError messages survive the mapping; everything unrecognized
// collapses to a logged 500 so internals never leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	metrics.HandlerErrors.Inc()

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", err)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Enter correct login credentials", nil)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", nil)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrUnauthenticated):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Authentication failed", nil)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied", err)
	case errors.Is(err, apperrors.ErrUnknownPerson):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceNotFound, "Student data not found", nil)
	case errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", err)
	case errors.Is(err, apperrors.ErrDuplicateAccount):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists", nil)
	case errors.Is(err, apperrors.ErrDuplicateRecord):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Record already exists", err)
	case errors.Is(err, apperrors.ErrUploadFailed):
		respond(c, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Media upload failed", nil)
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal Server Error", nil)
	}
}

// respond writes the standard error envelope. When err is a CustomError
// its message replaces the generic one.
func respond(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	var custom *apperrors.CustomError
	if err != nil && errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
