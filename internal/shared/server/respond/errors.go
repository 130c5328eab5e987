package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse is the flat error shape served by /getClothing.
type MessageResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	logError(c, status, code, message)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Message sends a flat {"error": message} response.
func Message(c *gin.Context, status int, message string) {
	logError(c, status, "", message)
	c.AbortWithStatusJSON(status, MessageResponse{Error: message})
}

// logError writes one line per failed request: warn for client errors,
// error for server errors. Errors attached with c.Error are included.
func logError(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if code != "" {
		fields["code"] = code
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	if status < http.StatusInternalServerError {
		telemetry.Warn("http.client_error", fields)
		return
	}
	telemetry.Error("http.error", fields)
}
