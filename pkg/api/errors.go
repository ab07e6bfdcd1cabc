package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, err.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrTerminalState) {
		return http.StatusConflict, "session is in a terminal state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// abortWithServiceError writes the mapped error response and aborts the
// handler chain.
func abortWithServiceError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
