package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUsername = "username"
	CtxRole     = "user_role"
	CtxClaims   = "claims"
)

// AuthMiddleware validates the bearer token and loads the claims into the
// gin context. Missing, malformed, expired and forged tokens all answer 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, utils.ErrExpiredToken) {
				message = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": message,
			})
			c.Abort()
			return
		}

		c.Set(CtxUsername, claims.Subject)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)

		c.Next()
	}
}

// RequireRoles is a static per-route allow-list evaluated after
// AuthMiddleware. Roles are enumerated explicitly, not hierarchical.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(CtxRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		role, ok := value.(models.Role)
		if ok {
			for _, a := range allowed {
				if role == a {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"kind":  "forbidden",
			"error": "You do not have permission to perform this action",
		})
		c.Abort()
	}
}
