package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// RespondWithError writes the standard error body and aborts the chain
func RespondWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}

// messageOr prefers the client-facing message carried by err
func messageOr(err error, fallback string) string {
	if msg, ok := apperrors.UserMessage(err); ok {
		return msg
	}
	return fallback
}

// HandleAPIError maps service errors onto HTTP responses. Unknown errors are
// logged and reported as 500 with the endpoint's static fallback message.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))
	case errors.Is(err, apperrors.ErrInvalidFileType):
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeInvalidFileType, messageOr(err, "Invalid file type"))
	case errors.Is(err, apperrors.ErrFileTooLarge):
		RespondWithError(c, http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge, messageOr(err, "File too large"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, messageOr(err, "Invalid email or password"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		RespondWithError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, messageOr(err, "Email already exists"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		RespondWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOr(err, "User not found"))
	case errors.Is(err, apperrors.ErrInstitutionNotFound):
		RespondWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOr(err, "Institution not found"))
	case apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrApplicationNotFound):
		RespondWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))
	default:
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg(fallback)
		RespondWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, fallback)
	}
}
