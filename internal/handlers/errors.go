package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/middleware"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Kind    apperrors.Kind `json:"kind"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message"`
}

// ErrorResponse wraps ErrorDetail for swagger.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:      http.StatusBadRequest,
	apperrors.KindNotFound:        http.StatusNotFound,
	apperrors.KindConflict:        http.StatusConflict,
	apperrors.KindDuplicateSource: http.StatusConflict,
	apperrors.KindConfiguration:   http.StatusUnprocessableEntity,
	apperrors.KindUnauthorized:    http.StatusUnauthorized,
	apperrors.KindStorage:         http.StatusInternalServerError,
}

// statusForError maps an error's kind onto an HTTP status.
func statusForError(err error) int {
	if status, ok := statusByKind[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondWithError writes the error body for err and logs it at a level matching the status.
func respondWithError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)
	status := statusForError(err)

	detail := ErrorDetail{Kind: kind, Code: apperrors.CodeOf(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.String("kind", string(kind)))
		detail.Message = msg // storage detail stays in the logs
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.String("kind", string(kind)))
	}
	c.JSON(status, gin.H{"error": detail})
}

// respondBadRequest reports a binding or parameter error.
func respondBadRequest(c *gin.Context, msg string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": ErrorDetail{Kind: apperrors.KindValidation, Message: msg + ": " + err.Error()}})
}

// requireUserID returns the acting user or writes a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrorDetail{Kind: apperrors.KindUnauthorized, Message: "Unauthorized"}})
		return "", false
	}
	return userID, true
}
