package utils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// AppError represents a custom application error with an HTTP status attached
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewFieldError(field, problem string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("%s %s", field, problem),
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func NewBadGatewayError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
	}
}

func NewNotImplementedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotImplemented,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// MapStorageError classifies a database error into an AppError. Constraint
// violations are detected by SQLSTATE first (23505 unique, 23503 foreign key);
// the substring check only runs for errors that are not *pq.Error.
func MapStorageError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return NewConflictError("A row with the same unique value already exists")
		case "23503":
			return NewValidationError("Referenced row does not exist")
		}
		return NewInternalError("Database error")
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return NewConflictError("A row with the same unique value already exists")
	}
	if strings.Contains(msg, "foreign key") {
		return NewValidationError("Referenced row does not exist")
	}

	return NewInternalError("Internal server error")
}

// HandleError sends the {ok:false, error} envelope for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"ok": false, "error": appErr.Message})
		return
	}

	mapped := MapStorageError(err)
	c.JSON(mapped.Code, gin.H{"ok": false, "error": mapped.Message})
}
