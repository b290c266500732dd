package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload handles POST /uploads/upload. Accepts a multipart "file" field,
// rejects anything that isn't an image, and stores it under a generated
// unique name so uploads can never clobber each other.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, KindValidation, "Missing file field")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(c, http.StatusBadRequest, KindValidation, "File provided is not an image")
		return
	}

	ext := filepath.Ext(file.Filename)
	name := uuid.New().String() + ext
	dst := filepath.Join(h.uploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Log.Error("Failed to store upload",
			zap.String("filename", file.Filename),
			zap.Error(err),
		)
		writeError(c, http.StatusInternalServerError, KindInternal, "There was an error uploading the file")
		return
	}

	logger.Log.Info("Image uploaded",
		zap.String("stored_as", name),
		zap.Int64("size", file.Size),
	)

	c.JSON(http.StatusCreated, gin.H{
		"image_url": "/uploads/" + name,
	})
}
