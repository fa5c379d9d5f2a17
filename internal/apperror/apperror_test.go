package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(NewNotFound("section", "footer")))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(NewInvalidInput("bad offset", cause)))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(NewUnauthorized("wrong password")))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(NewInternal("db", cause)))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(cause))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInvalidInput("bad offset", cause)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Cause: boom")
}

func TestAppError_ToJSON(t *testing.T) {
	h := NewNotFound("section", "footer").ToJSON()
	assert.Equal(t, "not found", h["error"])
	assert.Equal(t, "section not found", h["message"])
}
