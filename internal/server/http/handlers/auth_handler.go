package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/server/http/dto"
	"github.com/polkiloo/kicktracker/internal/server/http/middleware"
)

// AuthHandler processes registration, login and account endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err, msgUserNotFound)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, msgUserNotFound)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, msgUserNotFound)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteAccount handles DELETE /api/auth/me.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.facade.DeleteAccount(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, err, msgUserNotFound)
		return
	}
	middleware.ClearAuthCookie(c)
	respondMessage(c, http.StatusOK, msgAccountDeleted)
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}
