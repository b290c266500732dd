package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	userService        *service.UserService
}

func NewTransactionHandler(transactionService *service.TransactionService, userService *service.UserService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		userService:        userService,
	}
}

type TransactionRequest struct {
	ItemID    uint                     `json:"item_id" binding:"required"`
	UserID    uint                     `json:"user_id"`
	Action    models.TransactionAction `json:"action" binding:"required"`
	Timestamp *time.Time               `json:"timestamp"`
	Notes     string                   `json:"notes"`
	State     *models.ItemState        `json:"state"`
	ImageURL  string                   `json:"image_url"`
}

// Create handles POST /transactions/.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	// Default the acting user to the caller
	userID := req.UserID
	if userID == 0 {
		userID = user.ID
	}

	var timestamp time.Time
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	txn, err := h.transactionService.Record(service.RecordInput{
		ItemID:    req.ItemID,
		UserID:    userID,
		Action:    req.Action,
		Timestamp: timestamp,
		Notes:     req.Notes,
		State:     req.State,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// List handles GET /transactions/.
func (h *TransactionHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	transactions, err := h.transactionService.List(skip, limit)
	if err != nil {
		logger.Log.Error("Failed to list transactions", zap.Error(err))
		writeError(c, http.StatusInternalServerError, KindInternal, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Export handles GET /transactions/export. Streams a CSV of the
// transactions inside the requested range; without query params the range
// is the last 7 days. Available to any authenticated user.
func (h *TransactionHandler) Export(c *gin.Context) {
	now := time.Now().UTC()

	start := now.AddDate(0, 0, -7)
	if raw := c.Query("start"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, KindValidation,
				"Invalid datetime format. Use ISO8601, e.g. 2025-09-05T12:00:00Z")
			return
		}
		start = parsed
	}

	end := now
	if raw := c.Query("end"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, KindValidation,
				"Invalid datetime format. Use ISO8601, e.g. 2025-09-05T12:00:00Z")
			return
		}
		end = parsed
	}

	transactions, err := h.transactionService.GetByDateRange(start, end)
	if err != nil {
		logger.Log.Error("Failed to export transactions", zap.Error(err))
		writeError(c, http.StatusInternalServerError, KindInternal, "Failed to export transactions")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "item_id", "item_unique_id", "user_id", "username",
		"action", "state", "timestamp", "notes", "image_url",
	})

	for _, t := range transactions {
		var itemUniqueID, username, state string
		if t.Item != nil {
			itemUniqueID = t.Item.UniqueID
		}
		if t.User != nil {
			username = t.User.Username
		}
		if t.State != nil {
			state = string(*t.State)
		}

		_ = w.Write([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			strconv.FormatUint(uint64(t.ItemID), 10),
			itemUniqueID,
			strconv.FormatUint(uint64(t.UserID), 10),
			username,
			string(t.Action),
			state,
			t.Timestamp.UTC().Format(time.RFC3339),
			t.Notes,
			t.ImageURL,
		})
	}

	w.Flush()
}

// parseTimeParam accepts RFC3339 (Z-suffixed or offset) with a date-only
// fallback, mirroring the range forms clients send.
func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
