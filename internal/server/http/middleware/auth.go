package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	authCookieName   = "kicktracker_token"
)

// OwnerResolver turns a bearer token into the ID of an existing user.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, token string) (string, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(resolver OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := resolver.ResolveOwner(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrUnauthenticated) {
				abortUnauthorized(c)
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authentication required"})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
