package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Wrap(CodeStorage, "failed to create task", cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.False(t, errors.Is(err, ErrConstraintViolation))
	assert.True(t, errors.Is(err, cause), "cause must stay reachable through Unwrap")
	assert.Equal(t, "failed to create task: disk I/O error", err.Error())

	wrapped := fmt.Errorf("handler: %w", New(CodeNotFoundOrNotOwned, "employee not found"))
	assert.True(t, errors.Is(wrapped, ErrNotFoundOrNotOwned))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"InvalidInput", New(CodeInvalidInput, "bad"), http.StatusBadRequest},
		{"Unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"NotFoundOrNotOwned", ErrNotFoundOrNotOwned, http.StatusNotFound},
		{"ConstraintViolation", ErrConstraintViolation, http.StatusConflict},
		{"Storage", Wrap(CodeStorage, "x", errors.New("y")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "not_found_or_not_owned", CodeNotFoundOrNotOwned.String())
	assert.Equal(t, "storage_error", CodeOf(errors.New("x")).String())
}
