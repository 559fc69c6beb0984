package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/apperr"
	"taskflow/internal/model"
)

// respondError maps the error taxonomy to an HTTP response. Anything outside
// the taxonomy is a store failure and surfaces as an opaque 500; the caller
// is expected to have logged the cause.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		// The signup contract reports a taken email as a plain bad request.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUser reads the user resolved by the auth middleware.
func currentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("current_user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	u, ok := v.(*model.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	return u, true
}
