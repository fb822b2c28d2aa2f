package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// requestLogger returns the request-scoped logger, or the default logger when
// the middleware has not run.
func requestLogger(c *gin.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// respondServiceError translates a service error into an HTTP response. The
// sentinel mapping is fixed: unauthenticated 401, forbidden 403, not found
// 404, validation 400, duplicate 409, everything else 500 with a generic body.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := requestLogger(c)
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden request", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}
