package handler

import (
	"net/http"
	"strconv"

	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	userService     *service.UserService
}

func NewCategoryHandler(categoryService *service.CategoryService, userService *service.UserService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		userService:     userService,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /categories/.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	category, err := h.categoryService.Create(req.Name, req.Description, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// List handles GET /categories/.
func (h *CategoryHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	categories, err := h.categoryService.List(skip, limit)
	if err != nil {
		logger.Log.Error("Failed to list categories", zap.Error(err))
		writeError(c, http.StatusInternalServerError, KindInternal, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid category ID")
		return
	}

	category, err := h.categoryService.Get(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(uint(id), req.Name, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
