package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// API error kinds. Every expected service failure maps to one of these;
// anything else degrades to a generic 500 response.
const (
	KindNotFound        = "not_found"
	KindUnauthenticated = "unauthenticated"
	KindUnauthorized    = "unauthorized"
	KindConflict        = "conflict"
	KindValidation      = "validation_failure"
)

// APIError is the shared error taxonomy carried from services to handlers.
type APIError struct {
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a response status.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFoundError(msg string) error {
	return &APIError{Kind: KindNotFound, Message: msg}
}

func UnauthenticatedError(msg string) error {
	return &APIError{Kind: KindUnauthenticated, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &APIError{Kind: KindUnauthorized, Message: msg}
}

func ConflictError(msg string) error {
	return &APIError{Kind: KindConflict, Message: msg}
}

func ValidationError(msg string) error {
	return &APIError{Kind: KindValidation, Message: msg}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError translates a service error into the taxonomy response. Errors
// outside the taxonomy become a generic server error.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		JSONError(c, apiErr.HTTPStatus(), apiErr.Message, "")
		return
	}
	GetLogger().Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal Server Error",
		Details: "An unexpected error occurred. Please try again later.",
	})
}
