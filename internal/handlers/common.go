package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/middleware"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// respondError maps the core error taxonomy onto HTTP statuses. Validation
// errors are 400, missing resources 404, lost races 409 (with the taken
// seats when known); anything else is logged and surfaced as a generic 500
// so internal detail never leaks to the caller.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": validationErr.Message,
		})
		return
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": notFoundErr.Error(),
		})
		return
	}

	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		body := gin.H{
			"status":  "error",
			"message": conflictErr.Message,
		}
		if len(conflictErr.TakenSeats) > 0 {
			body["taken_seats"] = conflictErr.TakenSeats
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Request failed with internal error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error. Please try again later.",
	})
}

// currentUserID returns the authenticated user ID set by AuthMiddleware
func currentUserID(c *gin.Context) string {
	if id, exists := c.Get(middleware.ContextUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// currentUserRole returns the authenticated role set by AuthMiddleware
func currentUserRole(c *gin.Context) models.UserRole {
	if role, exists := c.Get(middleware.ContextRole); exists {
		if s, ok := role.(string); ok {
			return models.UserRole(s)
		}
	}
	return ""
}
