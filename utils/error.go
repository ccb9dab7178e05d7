package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nurturebloom/config"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				resp := ErrorResponse{Message: "Server Error"}
				if config.IsDevelopment() {
					if e, ok := err.(error); ok {
						resp.Details = e.Error()
					}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and stops the chain.
func JSONError(c *gin.Context, status int, message string, details ...string) {
	resp := ErrorResponse{Message: message}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	c.AbortWithStatusJSON(status, resp)
}

// ValidationErrorResponse lists binding failures per field.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// RespondValidationError reports a failed request binding as 400.
func RespondValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
		Message: "Invalid request",
		Errors:  FormatValidationErrors(err),
	})
}

// RespondError writes err to the client. Business errors carry their own
// message; anything else is logged and reported as a generic server error,
// with the cause attached only in development.
func RespondError(c *gin.Context, op string, err error) {
	status := HTTPStatus(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(status, ErrorResponse{Message: appErr.Message})
		return
	}

	GetLogger().Error(op+" failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	resp := ErrorResponse{Message: "Server Error"}
	if config.IsDevelopment() {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}
