package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/common"
)

// mapError translates a service sentinel into a status code; anything
// unrecognized is a 500 with the detail kept out of the response body.
func mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrAnswerMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "security answer does not match"})
	case errors.Is(err, common.ErrConfirmMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
	case errors.Is(err, common.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner"})
	case errors.Is(err, common.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
	case errors.Is(err, common.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown listing state"})
	case errors.Is(err, common.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message body must not be empty"})
	case errors.Is(err, common.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
	case errors.Is(err, common.ErrSelfReview):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot review yourself"})
	case errors.Is(err, common.ErrDuplicateReview):
		c.JSON(http.StatusConflict, gin.H{"error": "seller already reviewed"})
	case errors.Is(err, common.ErrInvalidStars):
		c.JSON(http.StatusBadRequest, gin.H{"error": "stars must be between 1 and 5"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
}

// formatDate renders creation dates the way the pages show them.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// formatDateTime renders message timestamps, minute precision.
func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
