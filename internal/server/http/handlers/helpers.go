package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/server/http/dto"
	"github.com/polkiloo/kicktracker/internal/server/http/middleware"
)

const (
	msgServerError        = "Server error"
	msgInvalidBody        = "Invalid request body"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUnauthenticated    = "Authentication required"
	msgKickNotFound       = "Kick not found"
	msgUserNotFound       = "User not found"
	msgKickRemoved        = "Kick removed"
	msgAccountDeleted     = "Account deleted"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// respondError maps domain errors onto status codes. Anything unknown is
// recorded on the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		respondMessage(c, http.StatusBadRequest, inputMessage(err))
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondMessage(c, http.StatusBadRequest, msgUserExists)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondMessage(c, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, domainErrors.ErrUnauthenticated):
		respondMessage(c, http.StatusUnauthorized, msgUnauthenticated)
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, notFound)
	default:
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, msgServerError)
	}
}

// inputMessage strips the sentinel prefix from wrapped validation errors.
func inputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domainErrors.ErrInvalidInput.Error()+": ")
	if msg == "" || msg == domainErrors.ErrInvalidInput.Error() {
		return msgInvalidBody
	}
	return msg
}
