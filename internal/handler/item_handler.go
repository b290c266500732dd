package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItemHandler struct {
	itemService *service.ItemService
	userService *service.UserService
}

func NewItemHandler(itemService *service.ItemService, userService *service.UserService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		userService: userService,
	}
}

type ItemRequest struct {
	UniqueID     string           `json:"unique_id" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	CategoryID   *uint            `json:"category_id"`
	State        models.ItemState `json:"state"`
	Location     string           `json:"location"`
	PurchaseDate *time.Time       `json:"purchase_date"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
}

// Create handles POST /items/.
func (h *ItemHandler) Create(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	item, err := h.itemService.Create(service.ItemInput{
		UniqueID:     req.UniqueID,
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		State:        req.State,
		Location:     req.Location,
		PurchaseDate: req.PurchaseDate,
		ExpiryDate:   req.ExpiryDate,
	}, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List handles GET /items/.
func (h *ItemHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.itemService.List(skip, limit)
	if err != nil {
		logger.Log.Error("Failed to list items", zap.Error(err))
		writeError(c, http.StatusInternalServerError, KindInternal, "Failed to fetch items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /items/:id. The item's transactions go with it.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid item ID")
		return
	}

	item, err := h.itemService.Delete(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
