package handlers

import (
	"errors"
	"net/http"

	"karkhana/validation"

	"github.com/gin-gonic/gin"
)

// respondValidationError writes the blocking-alert payload the client renders
// next to each offending field. Returns false when err is not a validation
// failure so the caller can handle it as a server error.
func respondValidationError(c *gin.Context, err error) bool {
	var vErr *validation.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": validation.AlertTitle,
		"details": validation.AlertBody,
		"errors":  vErr.Fields,
	})
	return true
}
