package handler

import (
	"net/http"

	"github.com/Fuanyi-237/inventory-hyclass/internal/middleware"
	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated token subject to a directory
// entry. The token only carries the username; creator references need the
// row. Returns false after writing a 401 when the subject no longer exists.
func currentUser(c *gin.Context, users *service.UserService) (*models.User, bool) {
	username := c.GetString(middleware.CtxUsername)

	user, err := users.GetByUsername(username)
	if err != nil {
		writeError(c, http.StatusUnauthorized, KindUnauthorized, "Could not validate credentials")
		return nil, false
	}

	return user, true
}
