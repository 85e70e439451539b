package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/livescore-service/internal/apierror"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// SendError sends a generic error response
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// SendAPIError maps an error-taxonomy kind to its HTTP status and sends
// the user-safe message, never the raw upstream detail.
func SendAPIError(c *gin.Context, err error) {
	kind := apierror.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apierror.KindValidation:
		status = http.StatusBadRequest
	case apierror.KindNotFound:
		status = http.StatusNotFound
	case apierror.KindTimeout:
		status = http.StatusGatewayTimeout
	case apierror.KindServer, apierror.KindConnection:
		status = http.StatusBadGateway
	}

	// Validation details describe the caller's own input and are safe
	// to echo. Everything else gets the generic user message.
	message := err.Error()
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		if kind == apierror.KindValidation {
			message = apiErr.Detail
		} else {
			message = apiErr.UserMessage()
		}
	}
	SendError(c, status, message)
}

// SendBadRequest sends a 400 bad request error
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message)
}

// SendNotFound sends a 404 not found error
func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

// SendSuccess sends a 200 success response
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

// SendSuccessWithMessage sends a 200 success response with message
func SendSuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:    data,
		Message: message,
	})
}
