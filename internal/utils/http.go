package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// MapDomainError translates a domain error into an HTTP response. Scope
// violations are logged distinctly before being surfaced: they indicate a
// cross-tenant access attempt, not a user mistake.
func MapDomainError(c echo.Context, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return ErrorResponseHandler(c, http.StatusBadRequest, err.Error())
	case apperrors.IsScope(err):
		logger.Warn("Tenant scope violation",
			logger.String("path", c.Request().URL.Path),
			logger.String("client_ip", c.RealIP()),
			logger.Err(err))
		return ErrorResponseHandler(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		return ErrorResponseHandler(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case apperrors.IsInvalidTransition(err):
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	default:
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
}
