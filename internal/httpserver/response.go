package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nextgear/internal/domain"
)

// writeError maps domain error kinds onto HTTP statuses. Every error is a
// rejected operation; nothing here is fatal.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrPrecondition):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
