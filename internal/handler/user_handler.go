package handler

import (
	"net/http"
	"strconv"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type CreateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	FullName string      `json:"full_name"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// Create handles POST /users/. Public in the current deployment.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User creation request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	user, err := h.userService.Create(service.CreateInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List handles GET /users/. Superadmin only, enforced by route middleware.
func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.userService.List(skip, limit)
	if err != nil {
		logger.Log.Error("Failed to list users", zap.Error(err))
		writeError(c, http.StatusInternalServerError, KindInternal, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateRole handles PUT /users/:id/role. Superadmin only.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid user ID")
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateRole(uint(id), req.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
