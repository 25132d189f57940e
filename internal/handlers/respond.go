package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body. Code is stable so clients branch
// on it rather than on the message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondError maps the application error taxonomy onto HTTP statuses.
// Expected rejections keep their stable code; everything else collapses into
// an opaque 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var rej *apperrors.RejectionError
	if errors.As(err, &rej) {
		status := http.StatusConflict
		switch {
		case errors.Is(rej, apperrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(rej, apperrors.ErrPolicyViolation):
			status = http.StatusForbidden
		case errors.Is(rej, apperrors.ErrTransient):
			status = http.StatusServiceUnavailable
		}
		logger.Warn("Request rejected", slog.String("code", string(rej.Code)), slog.String("reason", rej.Message))
		c.JSON(status, ErrorResponse{Error: rej.Message, Code: string(rej.Code)})
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == 400 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		return
	}

	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

func loggerFrom(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context())
}
