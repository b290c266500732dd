package handler

import (
	"net/http"

	"github.com/Fuanyi-237/inventory-hyclass/internal/middleware"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token handles POST /auth/token. OAuth2-style password flow: the request
// body is form-encoded username/password, the response carries a bearer
// token.
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		writeError(c, http.StatusBadRequest, KindValidation, "username and password are required")
		return
	}

	logger.Log.Info("Login attempt",
		zap.String("username", username),
		zap.String("ip", c.ClientIP()),
	)

	_, token, err := h.authService.Login(username, password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me handles GET /auth/me. Requires a valid bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)

	user, err := h.authService.CurrentUser(username)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
		"is_active": user.IsActive,
	})
}
