package handlers

import (
	"errors"
	"net/http"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps application errors to HTTP responses. Validation errors
// carry the failing field so the client can localize the problem.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		body := gin.H{"error": err.Error()}
		if field, ok := apperrors.FieldFromError(err); ok {
			body["field"] = field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
