package errorx

import (
	"errors"

	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorHandler converts errors into envelope responses at the HTTP boundary
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// HandleError renders err as the uniform envelope with the matching HTTP
// status. Unexpected errors are logged in full and surfaced as a generic
// store failure so internals never leak to the client.
func (h *ErrorHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	traceID := uuid.New().String()
	apiErr := h.ConvertToAPIError(err)
	h.logError(c, traceID, apiErr, err)

	c.JSON(apiErr.HTTPStatus, dto.Fail(apiErr.Message))
}

// ConvertToAPIError converts any error to APIError
func (h *ErrorHandler) ConvertToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrStoreUnavailable
}

// logError logs the error with request context
func (h *ErrorHandler) logError(c *gin.Context, traceID string, apiErr *APIError, originalErr error) {
	fields := []zap.Field{
		zap.String("trace_id", traceID),
		zap.String("error_code", apiErr.Code),
		zap.String("category", string(apiErr.Category)),
		zap.Int("http_status", apiErr.HTTPStatus),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("client_ip", c.ClientIP()),
	}
	if originalErr != nil && originalErr.Error() != apiErr.Message {
		fields = append(fields, zap.Error(originalErr))
	}

	if apiErr.Category == CategoryInternal {
		h.logger.Error(apiErr.Message, fields...)
		return
	}
	h.logger.Warn(apiErr.Message, fields...)
}
