package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapStorageError_StructuredCodes(t *testing.T) {
	conflict := MapStorageError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	assert.Equal(t, http.StatusConflict, conflict.Code)

	fk := MapStorageError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	assert.Equal(t, http.StatusBadRequest, fk.Code)

	other := MapStorageError(&pq.Error{Code: "42P01", Message: "relation does not exist"})
	assert.Equal(t, http.StatusInternalServerError, other.Code)
}

func TestMapStorageError_SubstringFallback(t *testing.T) {
	// Non-pq errors fall back to message inspection
	conflict := MapStorageError(errors.New(`pq: duplicate key value violates unique constraint "days_trip_id_day_no_key"`))
	assert.Equal(t, http.StatusConflict, conflict.Code)

	fk := MapStorageError(errors.New("insert or update violates foreign key constraint"))
	assert.Equal(t, http.StatusBadRequest, fk.Code)

	unknown := MapStorageError(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, unknown.Code)
}

func TestMapStorageError_PassesThroughAppErrors(t *testing.T) {
	original := NewNotFoundError("Trip")
	assert.Same(t, original, MapStorageError(original))
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").Code)
	assert.Equal(t, "startDate is required", NewFieldError("startDate", "is required").Message)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Trip").Code)
	assert.Equal(t, "Trip not found", NewNotFoundError("Trip").Message)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x").Code)
	assert.Equal(t, http.StatusConflict, NewConflictError("x").Code)
	assert.Equal(t, http.StatusBadGateway, NewBadGatewayError("x").Code)
	assert.Equal(t, http.StatusNotImplemented, NewNotImplementedError("x").Code)
}
