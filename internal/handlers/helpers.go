package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/services"
)

// respondError maps the error taxonomy to HTTP statuses: validation and
// malformed imports are the client's fault, anything else is ours.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}
	var derr *services.DataShapeError
	if errors.As(err, &derr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": derr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
