package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxislabs/praxis/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("task", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "task",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: transport must be stdio or http", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "transport",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading session: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "terminal state",
			err:        services.ErrTerminalState,
			expectCode: http.StatusConflict,
			expectMsg:  "terminal",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unexpected error",
			err:        fmt.Errorf("disk on fire"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.expectCode, status)
			assert.Contains(t, msg, tt.expectMsg)
		})
	}
}
