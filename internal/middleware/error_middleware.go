package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError maps a service error to its HTTP status and error envelope.
// It is the only place where status codes are chosen for failures.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	msg, hasMsg := apperrors.Message(err)
	withMsg := func(fallback string) string {
		if hasMsg {
			return msg
		}
		return fallback
	}

	var ce *apperrors.CustomError
	override := ""
	if errors.As(err, &ce) {
		override = ce.Code
	}
	code := func(def dto.ErrorCode) dto.ErrorCode {
		if override != "" {
			return dto.ErrorCode(override)
		}
		return def
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(code(dto.ErrorCodeResourceNotFound), withMsg("Resource not found")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(code(dto.ErrorCodeConflict), withMsg("Resource already exists")).
			WithSeverity(dto.ErrorSeverityWarning)
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(code(dto.ErrorCodeValidationFailed), withMsg("Invalid request")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(code(dto.ErrorCodeInvalidCredentials), "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		// Unresolvable credentials are a server error, not 401.
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Credential has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Credential could not be resolved")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// HandleBindingError answers 400 for a request body that cannot be bound
func HandleBindingError(c *gin.Context, err error) {
	logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid request payload")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
