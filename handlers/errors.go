package handlers

import (
	"errors"
	"net/http"

	"mozeh-api/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondServiceError maps a service error to an HTTP status. clientMsg is
// the localized message shown to the caller; internal causes are logged
// server-side and never leaked.
func respondServiceError(c *gin.Context, err error, clientMsg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(status, gin.H{"error": clientMsg})
		return
	}
	if errors.Is(err, service.ErrInvalidTransition) {
		c.JSON(status, gin.H{"error": clientMsg, "reason": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": clientMsg})
}
